package weather

import "sort"

// lvStations is the read-only registry of Landsverk road-weather stations
// published on lv.fo, keyed by configuration key.
var lvStations = map[string]Station{
	"lv_kambsdalur":        {Key: "lv_kambsdalur", Name: "Kambsdalur", Source: "lv", StationID: "F-10"},
	"lv_hogareyn":          {Key: "lv_hogareyn", Name: "Høgareyn", Source: "lv", StationID: "F-12"},
	"lv_sund":              {Key: "lv_sund", Name: "Sund", Source: "lv", StationID: "F-21"},
	"lv_runavik":           {Key: "lv_runavik", Name: "Runavík", Source: "lv", StationID: "F-22"},
	"lv_vatnsoyrar":        {Key: "lv_vatnsoyrar", Name: "Vatnsoyrar", Source: "lv", StationID: "F-23"},
	"lv_klaksvik":          {Key: "lv_klaksvik", Name: "Klaksvík", Source: "lv", StationID: "F-24"},
	"lv_sandoy":            {Key: "lv_sandoy", Name: "Sandoy,á Brekkuni Stóru", Source: "lv", StationID: "F-25"},
	"lv_sydradalur":        {Key: "lv_sydradalur", Name: "Syðradalur", Source: "lv", StationID: "F-26"},
	"lv_porkerishalsur":    {Key: "lv_porkerishalsur", Name: "Porkerishálsur", Source: "lv", StationID: "F-27"},
	"lv_krambatangi":       {Key: "lv_krambatangi", Name: "Krambatangi", Source: "lv", StationID: "F-28"},
	"lv_skopun":            {Key: "lv_skopun", Name: "Skopun", Source: "lv", StationID: "F-29"},
	"lv_nordradalsskard":   {Key: "lv_nordradalsskard", Name: "Norðradalsskarð", Source: "lv", StationID: "F-33"},
	"lv_tjornuvik":         {Key: "lv_tjornuvik", Name: "Tjørnuvík", Source: "lv", StationID: "F-35"},
	"lv_nordurisundum":     {Key: "lv_nordurisundum", Name: "Norðuri í Sundum, Kollaf", Source: "lv", StationID: "F-36"},
	"lv_nordskalatunnilin": {Key: "lv_nordskalatunnilin", Name: "Norðskálatunnilin", Source: "lv", StationID: "F-37"},
	"lv_kaldbaksbotnur":    {Key: "lv_kaldbaksbotnur", Name: "Kaldbaksbotnur", Source: "lv", StationID: "F-38"},
	"lv_gotueidi":          {Key: "lv_gotueidi", Name: "Gøtueiði", Source: "lv", StationID: "F-39"},
	"lv_dalavegur":         {Key: "lv_dalavegur", Name: "Dalavegur til Viðareiðis", Source: "lv", StationID: "F-40"},
	"lv_sandavagshalsi":    {Key: "lv_sandavagshalsi", Name: "Á Sandavágshálsi", Source: "lv", StationID: "F-41"},
	"lv_gjaarskard":        {Key: "lv_gjaarskard", Name: "Gjáarskarð", Source: "lv", StationID: "F-42"},
	"lv_heltnin":           {Key: "lv_heltnin", Name: "Heltnin, Oyndarfjarðarvegurin", Source: "lv", StationID: "F-43"},
	"lv_hvalba":            {Key: "lv_hvalba", Name: "Hvalba", Source: "lv", StationID: "F-44"},
	"lv_streymnes":         {Key: "lv_streymnes", Name: "Streymnes", Source: "lv", StationID: "F-45"},
	"lv_velbastadhals":     {Key: "lv_velbastadhals", Name: "Við Velbastaðháls", Source: "lv", StationID: "F-48"},
	"lv_ordaskard":         {Key: "lv_ordaskard", Name: "Ørðaskarð, Fámjinsvegur", Source: "lv", StationID: "F-49"},
}

// LookupStation resolves a configuration key against the station registry.
func LookupStation(key string) (Station, bool) {
	st, ok := lvStations[key]
	return st, ok
}

// Stations returns all registry entries sorted by key.
func Stations() []Station {
	out := make([]Station, 0, len(lvStations))
	for _, st := range lvStations {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
