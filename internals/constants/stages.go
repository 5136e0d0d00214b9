package constants

// Tahapan dakwah mad'u (berurutan, 6 tahap). Nilai disimpan apa adanya
// dalam bahasa Arab supaya kompatibel dengan data frontend lama.
var DawaStages = []string{
	"تواصل جديد",   // kontak baru
	"اهتمام أولي",  // mulai tertarik
	"حضور منتظم",   // hadir rutin
	"متعلم ملتزم",  // pelajar komitmen
	"مشارك نشط",    // partisipan aktif
	"قائد مجتمعي",  // pemimpin komunitas
}

// DefaultDawaStage = tahap awal untuk mad'u baru
func DefaultDawaStage() string {
	return DawaStages[0]
}

func IsValidDawaStage(stage string) bool {
	for _, s := range DawaStages {
		if s == stage {
			return true
		}
	}
	return false
}
