package constants

// Jenis kegiatan dakwah. Dulu dipisah 4 koleksi (maqari/events/lessons/sections),
// sekarang satu tabel activities dengan kolom activity_kind.
const (
	ActivityKindMaqra   = "maqra"   // halaqah tilawah pribadi milik pembuatnya
	ActivityKindEvent   = "event"   // acara terpusat
	ActivityKindLesson  = "lesson"  // kajian terpusat
	ActivityKindSection = "section" // kelas/rombongan terpusat
)

var ActivityKinds = []string{
	ActivityKindMaqra,
	ActivityKindEvent,
	ActivityKindLesson,
	ActivityKindSection,
}

// CentralActivityKinds hanya boleh dibuat admin; maqra boleh semua user approved.
var CentralActivityKinds = []string{
	ActivityKindEvent,
	ActivityKindLesson,
	ActivityKindSection,
}

func IsValidActivityKind(kind string) bool {
	for _, k := range ActivityKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func IsCentralActivityKind(kind string) bool {
	for _, k := range CentralActivityKinds {
		if k == kind {
			return true
		}
	}
	return false
}
