// Package league provides static NFL division membership and rivalry data.
// Lookups are pure; callers resolve membership once when constructing model
// input so the scoring path never performs I/O.
package league

// Division identifies one of the eight NFL divisions
type Division string

const (
	AFCEast  Division = "AFC_EAST"
	AFCNorth Division = "AFC_NORTH"
	AFCSouth Division = "AFC_SOUTH"
	AFCWest  Division = "AFC_WEST"
	NFCEast  Division = "NFC_EAST"
	NFCNorth Division = "NFC_NORTH"
	NFCSouth Division = "NFC_SOUTH"
	NFCWest  Division = "NFC_WEST"
)

// Conference returns "AFC" or "NFC"
func (d Division) Conference() string {
	switch d {
	case AFCEast, AFCNorth, AFCSouth, AFCWest:
		return "AFC"
	case NFCEast, NFCNorth, NFCSouth, NFCWest:
		return "NFC"
	}
	return ""
}

var teamDivisions = map[string]Division{
	"BUF": AFCEast, "MIA": AFCEast, "NE": AFCEast, "NYJ": AFCEast,
	"BAL": AFCNorth, "CIN": AFCNorth, "CLE": AFCNorth, "PIT": AFCNorth,
	"HOU": AFCSouth, "IND": AFCSouth, "JAX": AFCSouth, "TEN": AFCSouth,
	"DEN": AFCWest, "KC": AFCWest, "LV": AFCWest, "LAC": AFCWest,
	"DAL": NFCEast, "NYG": NFCEast, "PHI": NFCEast, "WAS": NFCEast,
	"CHI": NFCNorth, "DET": NFCNorth, "GB": NFCNorth, "MIN": NFCNorth,
	"ATL": NFCSouth, "CAR": NFCSouth, "NO": NFCSouth, "TB": NFCSouth,
	"ARI": NFCWest, "LAR": NFCWest, "SF": NFCWest, "SEA": NFCWest,
}

// DivisionOf returns the division for a team abbreviation
func DivisionOf(teamID string) (Division, bool) {
	d, ok := teamDivisions[teamID]
	return d, ok
}

// SameDivision reports whether two teams share a division. Unknown teams are
// never divisional opponents.
func SameDivision(a, b string) bool {
	da, oka := teamDivisions[a]
	db, okb := teamDivisions[b]
	return oka && okb && da == db
}

// Teams returns all team abbreviations in the table
func Teams() []string {
	out := make([]string, 0, len(teamDivisions))
	for id := range teamDivisions {
		out = append(out, id)
	}
	return out
}
