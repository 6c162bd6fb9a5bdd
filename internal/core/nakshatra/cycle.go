// Package nakshatra resolves free text nakshatra names to their position in
// the fixed 27 mansion cycle and computes the chandrashtama offset
package nakshatra

const (
	// Size is the number of nakshatras in the cycle
	Size = 27

	// Offset from a nakshatra to its chandrashtama mansion: the 12th counted
	// inclusively, so eleven steps forward
	Offset = 11

	// Unknown names an unresolved nakshatra
	Unknown = "Unknown"
)

// Nakshatra is one entry of the canonical cycle
type Nakshatra struct {
	Index   int    `json:"index"`
	Tamil   string `json:"tamil"`
	English string `json:"english"`
}

var cycle = [Size]Nakshatra{
	{0, "அஸ்வினி", "Ashwini"},
	{1, "பரணி", "Bharani"},
	{2, "கார்த்திகை", "Krittika"},
	{3, "ரோகிணி", "Rohini"},
	{4, "மிருகசீரிடம்", "Mrigashira"},
	{5, "திருவாதிரை", "Ardra"},
	{6, "புனர்பூசம்", "Punarvasu"},
	{7, "பூசம்", "Pushya"},
	{8, "ஆயில்யம்", "Ashlesha"},
	{9, "மகம்", "Magha"},
	{10, "பூரம்", "Purva Phalguni"},
	{11, "உத்திரம்", "Uttara Phalguni"},
	{12, "அஸ்தம்", "Hasta"},
	{13, "சித்திரை", "Chitra"},
	{14, "சுவாதி", "Swati"},
	{15, "விசாகம்", "Vishakha"},
	{16, "அனுஷம்", "Anuradha"},
	{17, "கேட்டை", "Jyeshtha"},
	{18, "மூலம்", "Mula"},
	{19, "பூராடம்", "Purva Ashadha"},
	{20, "உத்திராடம்", "Uttara Ashadha"},
	{21, "திருவோணம்", "Shravana"},
	{22, "அவிட்டம்", "Dhanishta"},
	{23, "சதயம்", "Shatabhisha"},
	{24, "பூரட்டாதி", "Purva Bhadrapada"},
	{25, "உத்திரட்டாதி", "Uttara Bhadrapada"},
	{26, "ரேவதி", "Revati"},
}

// Cycle returns a copy of the canonical cycle in index order
func Cycle() []Nakshatra {
	out := make([]Nakshatra, Size)
	copy(out, cycle[:])
	return out
}

// At returns the nakshatra at index i
func At(i int) (Nakshatra, bool) {
	if i < 0 || i >= Size {
		return Nakshatra{}, false
	}
	return cycle[i], true
}

// ChandrashtamaIndex is (i + Offset) mod Size, always within [0, Size)
func ChandrashtamaIndex(i int) int {
	return ((i+Offset)%Size + Size) % Size
}
