// Ghent demo dataset. Coordinates follow the real city: the Belfort is
// the play-zone center, the R40 is the inner ring road, the Leie-Schelde
// line splits the city north/south. Curated by hand; approximations are
// fine at play-area scale.
package dataset

import "github.com/obvius1/Location-Search-Game/internal/geo"

// Reference points around Ghent.
var (
	belfort           = geo.Point{Lat: 51.0536844, Lng: 3.72476097}
	dampoort          = geo.Point{Lat: 51.056221, Lng: 3.740287984}
	watersportbaanTip = geo.Point{Lat: 51.0463306, Lng: 3.705969308}
	weba              = geo.Point{Lat: 51.07385946620895, Lng: 3.7407081136252547}
	ikea              = geo.Point{Lat: 51.02356223132743, Lng: 3.6878854133255237}
)

// r40Ring traces the R40 inner ring road around the city center.
var r40Ring = geo.Ring{
	{Lat: 51.0493, Lng: 3.7071}, {Lat: 51.0494, Lng: 3.7067}, {Lat: 51.0494, Lng: 3.7061},
	{Lat: 51.0493, Lng: 3.7056}, {Lat: 51.0494, Lng: 3.7051}, {Lat: 51.0495, Lng: 3.7048},
	{Lat: 51.0497, Lng: 3.7043}, {Lat: 51.0499, Lng: 3.7038}, {Lat: 51.0500, Lng: 3.7035},
	{Lat: 51.0500, Lng: 3.7032}, {Lat: 51.0501, Lng: 3.7030}, {Lat: 51.0504, Lng: 3.7026},
	{Lat: 51.0524, Lng: 3.7000}, {Lat: 51.0537, Lng: 3.6982}, {Lat: 51.0560, Lng: 3.6953},
	{Lat: 51.0565, Lng: 3.6947}, {Lat: 51.0571, Lng: 3.6938}, {Lat: 51.0575, Lng: 3.6933},
	{Lat: 51.0578, Lng: 3.6932}, {Lat: 51.0580, Lng: 3.6931}, {Lat: 51.0587, Lng: 3.6930},
	{Lat: 51.0594, Lng: 3.6930}, {Lat: 51.0597, Lng: 3.6931}, {Lat: 51.0607, Lng: 3.6933},
	{Lat: 51.0613, Lng: 3.6937}, {Lat: 51.0621, Lng: 3.6942}, {Lat: 51.0632, Lng: 3.6951},
	{Lat: 51.0641, Lng: 3.6959}, {Lat: 51.0644, Lng: 3.6962}, {Lat: 51.0647, Lng: 3.6967},
	{Lat: 51.0653, Lng: 3.6980}, {Lat: 51.0658, Lng: 3.6991}, {Lat: 51.0663, Lng: 3.6997},
	{Lat: 51.0656, Lng: 3.7005}, {Lat: 51.0651, Lng: 3.7009}, {Lat: 51.0650, Lng: 3.7015},
	{Lat: 51.0648, Lng: 3.7020}, {Lat: 51.0647, Lng: 3.7022}, {Lat: 51.0645, Lng: 3.7023},
	{Lat: 51.0643, Lng: 3.7025}, {Lat: 51.0643, Lng: 3.7028}, {Lat: 51.0646, Lng: 3.7046},
	{Lat: 51.0652, Lng: 3.7081}, {Lat: 51.0658, Lng: 3.7124}, {Lat: 51.0669, Lng: 3.7197},
	{Lat: 51.0678, Lng: 3.7256}, {Lat: 51.0679, Lng: 3.7270}, {Lat: 51.0676, Lng: 3.7270},
	{Lat: 51.0674, Lng: 3.7270}, {Lat: 51.0673, Lng: 3.7270}, {Lat: 51.0676, Lng: 3.7281},
	{Lat: 51.0677, Lng: 3.7286}, {Lat: 51.0678, Lng: 3.7295}, {Lat: 51.0676, Lng: 3.7319},
	{Lat: 51.0677, Lng: 3.7327}, {Lat: 51.0681, Lng: 3.7352}, {Lat: 51.0682, Lng: 3.7355},
	{Lat: 51.0683, Lng: 3.7369}, {Lat: 51.0684, Lng: 3.7376}, {Lat: 51.0683, Lng: 3.7380},
	{Lat: 51.0682, Lng: 3.7382}, {Lat: 51.0680, Lng: 3.7383}, {Lat: 51.0678, Lng: 3.7384},
	{Lat: 51.0673, Lng: 3.7385}, {Lat: 51.0671, Lng: 3.7386}, {Lat: 51.0668, Lng: 3.7387},
	{Lat: 51.0650, Lng: 3.7390}, {Lat: 51.0642, Lng: 3.7392}, {Lat: 51.0640, Lng: 3.7392},
	{Lat: 51.0639, Lng: 3.7392}, {Lat: 51.0637, Lng: 3.7392}, {Lat: 51.0635, Lng: 3.7391},
	{Lat: 51.0632, Lng: 3.7390}, {Lat: 51.0629, Lng: 3.7389}, {Lat: 51.0625, Lng: 3.7387},
	{Lat: 51.0621, Lng: 3.7386}, {Lat: 51.0618, Lng: 3.7385}, {Lat: 51.0615, Lng: 3.7384},
	{Lat: 51.0611, Lng: 3.7384}, {Lat: 51.0607, Lng: 3.7385}, {Lat: 51.0599, Lng: 3.7389},
	{Lat: 51.0591, Lng: 3.7393}, {Lat: 51.0580, Lng: 3.7398}, {Lat: 51.0577, Lng: 3.7399},
	{Lat: 51.0575, Lng: 3.7400}, {Lat: 51.0573, Lng: 3.7399}, {Lat: 51.0573, Lng: 3.7397},
	{Lat: 51.0572, Lng: 3.7390}, {Lat: 51.0571, Lng: 3.7386}, {Lat: 51.0570, Lng: 3.7383},
	{Lat: 51.0569, Lng: 3.7383}, {Lat: 51.0568, Lng: 3.7383}, {Lat: 51.0565, Lng: 3.7385},
	{Lat: 51.0563, Lng: 3.7386}, {Lat: 51.0562, Lng: 3.7387}, {Lat: 51.0559, Lng: 3.7388},
	{Lat: 51.0557, Lng: 3.7388}, {Lat: 51.0554, Lng: 3.7390}, {Lat: 51.0531, Lng: 3.7400},
	{Lat: 51.0523, Lng: 3.7403}, {Lat: 51.0519, Lng: 3.7408}, {Lat: 51.0509, Lng: 3.7419},
	{Lat: 51.0502, Lng: 3.7427}, {Lat: 51.0486, Lng: 3.7446}, {Lat: 51.0482, Lng: 3.7450},
	{Lat: 51.0479, Lng: 3.7454}, {Lat: 51.0475, Lng: 3.7457}, {Lat: 51.0472, Lng: 3.7457},
	{Lat: 51.0470, Lng: 3.7457}, {Lat: 51.0468, Lng: 3.7455}, {Lat: 51.0462, Lng: 3.7449},
	{Lat: 51.0456, Lng: 3.7441}, {Lat: 51.0452, Lng: 3.7436}, {Lat: 51.0447, Lng: 3.7428},
	{Lat: 51.0443, Lng: 3.7422}, {Lat: 51.0438, Lng: 3.7416}, {Lat: 51.0436, Lng: 3.7413},
	{Lat: 51.0435, Lng: 3.7412}, {Lat: 51.0433, Lng: 3.7409}, {Lat: 51.0431, Lng: 3.7407},
	{Lat: 51.0427, Lng: 3.7403}, {Lat: 51.0424, Lng: 3.7401}, {Lat: 51.0422, Lng: 3.7398},
	{Lat: 51.0417, Lng: 3.7394}, {Lat: 51.0414, Lng: 3.7391}, {Lat: 51.0411, Lng: 3.7387},
	{Lat: 51.0409, Lng: 3.7386}, {Lat: 51.0407, Lng: 3.7385}, {Lat: 51.0402, Lng: 3.7383},
	{Lat: 51.0401, Lng: 3.7382}, {Lat: 51.0400, Lng: 3.7382}, {Lat: 51.0396, Lng: 3.7381},
	{Lat: 51.0395, Lng: 3.7380}, {Lat: 51.0394, Lng: 3.7379}, {Lat: 51.0392, Lng: 3.7378},
	{Lat: 51.0391, Lng: 3.7376}, {Lat: 51.0390, Lng: 3.7374}, {Lat: 51.0389, Lng: 3.7371},
	{Lat: 51.0388, Lng: 3.7366}, {Lat: 51.0386, Lng: 3.7357}, {Lat: 51.0385, Lng: 3.7348},
	{Lat: 51.0384, Lng: 3.7341}, {Lat: 51.0385, Lng: 3.7328}, {Lat: 51.0385, Lng: 3.7308},
	{Lat: 51.0385, Lng: 3.7292}, {Lat: 51.0386, Lng: 3.7277}, {Lat: 51.0386, Lng: 3.7274},
	{Lat: 51.0386, Lng: 3.7269}, {Lat: 51.0387, Lng: 3.7260}, {Lat: 51.0387, Lng: 3.7256},
	{Lat: 51.0388, Lng: 3.7253}, {Lat: 51.0390, Lng: 3.7249}, {Lat: 51.0393, Lng: 3.7243},
	{Lat: 51.0399, Lng: 3.7232}, {Lat: 51.0408, Lng: 3.7215}, {Lat: 51.0413, Lng: 3.7207},
	{Lat: 51.0415, Lng: 3.7204}, {Lat: 51.0418, Lng: 3.7198}, {Lat: 51.0426, Lng: 3.7181},
	{Lat: 51.0429, Lng: 3.7175}, {Lat: 51.0433, Lng: 3.7168}, {Lat: 51.0440, Lng: 3.7155},
	{Lat: 51.0444, Lng: 3.7147}, {Lat: 51.0448, Lng: 3.7144}, {Lat: 51.0451, Lng: 3.7143},
	{Lat: 51.0455, Lng: 3.7143}, {Lat: 51.0457, Lng: 3.7143}, {Lat: 51.0460, Lng: 3.7140},
	{Lat: 51.0461, Lng: 3.7136}, {Lat: 51.0468, Lng: 3.7117}, {Lat: 51.0474, Lng: 3.7106},
	{Lat: 51.0476, Lng: 3.7103}, {Lat: 51.0484, Lng: 3.7094}, {Lat: 51.0488, Lng: 3.7087},
	{Lat: 51.0490, Lng: 3.7082}, {Lat: 51.0492, Lng: 3.7076},
}

// leieScheldeLine separates north and south Ghent along the waterways.
var leieScheldeLine = geo.Polyline{
	{Lat: 51.0450, Lng: 3.6900},
	{Lat: 51.0520, Lng: 3.7600},
}

// watersportbaanBuffer is a hand-drawn corridor around the rowing
// course, roughly 400m to each side.
var watersportbaanBuffer = geo.Ring{
	{Lat: 51.0500, Lng: 3.7010},
	{Lat: 51.0500, Lng: 3.7110},
	{Lat: 51.0380, Lng: 3.7110},
	{Lat: 51.0380, Lng: 3.7010},
}

// Ghent returns the built-in demo dataset: a 16 km play zone centered on
// the Belfort with the landmarks the demo cards reference.
func Ghent() *Set {
	return &Set{
		Name:    "gent",
		Center:  belfort,
		RadiusM: 16000,

		Rings: []NamedPolygon{
			{Name: "r40", Polygon: geo.Polygon{Outer: r40Ring}},
		},
		Separators: []NamedPolyline{
			{Name: "leie-schelde", Line: leieScheldeLine},
		},
		Buffers: []NamedPolygon{
			{Name: "watersportbaan-corridor", Polygon: geo.Polygon{Outer: watersportbaanBuffer}},
		},
		POIs: map[string]POI{
			"belfort":            {Name: "Belfort", Point: belfort},
			"dampoort":           {Name: "Station Dampoort", Point: dampoort},
			"watersportbaan-tip": {Name: "Watersportbaan (noordelijke tip)", Point: watersportbaanTip},
			"weba":               {Name: "Weba", Point: weba},
			"ikea":               {Name: "IKEA Gent", Point: ikea},
		},
		Collections: map[string][]POI{
			"hospitals": {
				{Name: "UZ Gent", Point: geo.Point{Lat: 51.0241, Lng: 3.7252}},
				{Name: "AZ Sint-Lucas", Point: geo.Point{Lat: 51.0680, Lng: 3.7310}},
				{Name: "AZ Jan Palfijn", Point: geo.Point{Lat: 51.0772, Lng: 3.6967}},
				{Name: "AZ Maria Middelares", Point: geo.Point{Lat: 51.0199, Lng: 3.6822}},
			},
			"libraries": {
				{Name: "De Krook", Point: geo.Point{Lat: 51.0490, Lng: 3.7280}},
				{Name: "Bibliotheek Brugse Poort", Point: geo.Point{Lat: 51.0601, Lng: 3.7003}},
				{Name: "Bibliotheek Ledeberg", Point: geo.Point{Lat: 51.0365, Lng: 3.7452}},
			},
			"stations": {
				{Name: "Gent-Sint-Pieters", Point: geo.Point{Lat: 51.0362, Lng: 3.7108}},
				{Name: "Gent-Dampoort", Point: dampoort},
				{Name: "Gentbrugge", Point: geo.Point{Lat: 51.0337, Lng: 3.7666}},
			},
		},
		Neighborhoods: []Neighborhood{
			{ID: 1, Name: "Binnenstad", Polygon: geo.Polygon{Outer: geo.Ring{
				{Lat: 51.0440, Lng: 3.7120},
				{Lat: 51.0440, Lng: 3.7400},
				{Lat: 51.0640, Lng: 3.7400},
				{Lat: 51.0640, Lng: 3.7120},
			}}},
			{ID: 2, Name: "Brugse Poort", Polygon: geo.Polygon{Outer: geo.Ring{
				{Lat: 51.0440, Lng: 3.6850},
				{Lat: 51.0440, Lng: 3.7120},
				{Lat: 51.0640, Lng: 3.7120},
				{Lat: 51.0640, Lng: 3.6850},
			}}},
			{ID: 3, Name: "Ledeberg", Polygon: geo.Polygon{Outer: geo.Ring{
				{Lat: 51.0280, Lng: 3.7400},
				{Lat: 51.0280, Lng: 3.7650},
				{Lat: 51.0440, Lng: 3.7650},
				{Lat: 51.0440, Lng: 3.7400},
			}}},
			{ID: 4, Name: "Sint-Amandsberg", Polygon: geo.Polygon{Outer: geo.Ring{
				{Lat: 51.0440, Lng: 3.7400},
				{Lat: 51.0440, Lng: 3.7700},
				{Lat: 51.0700, Lng: 3.7700},
				{Lat: 51.0700, Lng: 3.7400},
			}}},
		},
	}
}
