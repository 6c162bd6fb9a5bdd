package nakshatra

import (
	"maps"
	"slices"
)

// variantSource maps alternate spellings to the canonical Tamil name.
// Keys are compared in normalize.Key form, so case, spacing and
// punctuation do not matter here
var variantSource = map[string]string{
	// 0
	"Ashwini": "அஸ்வினி", "Aswini": "அஸ்வினி", "Asvini": "அஸ்வினி", "Ashvini": "அஸ்வினி",
	"Aswathi": "அஸ்வினி", "அசுவினி": "அஸ்வினி", "அஸ்வினீ": "அஸ்வினி", "அச்சுவினி": "அஸ்வினி",
	// 1
	"Bharani": "பரணி", "Barani": "பரணி", "Bharini": "பரணி", "பரனி": "பரணி", "பரணீ": "பரணி",
	// 2
	"Krittika": "கார்த்திகை", "Kritika": "கார்த்திகை", "Krithika": "கார்த்திகை", "Kartika": "கார்த்திகை",
	"Karthigai": "கார்த்திகை", "Karthikai": "கார்த்திகை", "Karthika": "கார்த்திகை",
	"கிருத்திகை": "கார்த்திகை", "கிருத்திகா": "கார்த்திகை", "கார்த்திகா": "கார்த்திகை",
	// 3
	"Rohini": "ரோகிணி", "Rohinee": "ரோகிணி", "ரோஹிணி": "ரோகிணி", "ரோகினி": "ரோகிணி", "ரோஹினி": "ரோகிணி",
	// 4
	"Mrigashira": "மிருகசீரிடம்", "Mrigasira": "மிருகசீரிடம்", "Mrigashirsha": "மிருகசீரிடம்",
	"Mrigasheersha": "மிருகசீரிடம்", "Mirugasirisham": "மிருகசீரிடம்", "Makayiram": "மிருகசீரிடம்",
	"மிருகசீரிஷம்": "மிருகசீரிடம்", "மிருகசீர்ஷம்": "மிருகசீரிடம்", "மிருகசீர்ஷா": "மிருகசீரிடம்",
	// 5
	"Ardra": "திருவாதிரை", "Aardra": "திருவாதிரை", "Arudra": "திருவாதிரை", "Thiruvathirai": "திருவாதிரை",
	"Thiruvadhirai": "திருவாதிரை", "Thiruvathira": "திருவாதிரை", "ஆதிரை": "திருவாதிரை", "ஆருத்ரா": "திருவாதிரை",
	// 6
	"Punarvasu": "புனர்பூசம்", "Punarpoosam": "புனர்பூசம்", "Punarpusam": "புனர்பூசம்", "Punartham": "புனர்பூசம்",
	"புனர்வசு": "புனர்பூசம்", "புனர்பூஷம்": "புனர்பூசம்",
	// 7
	"Pushya": "பூசம்", "Pushyami": "பூசம்", "Pushyam": "பூசம்", "Poosam": "பூசம்", "Pusam": "பூசம்",
	"Pooyam": "பூசம்", "புஷ்யம்": "பூசம்", "பூஷம்": "பூசம்",
	// 8
	"Ashlesha": "ஆயில்யம்", "Aslesha": "ஆயில்யம்", "Ashlesa": "ஆயில்யம்", "Ayilyam": "ஆயில்யம்",
	"Aayilyam": "ஆயில்யம்", "ஆயிலியம்": "ஆயில்யம்", "ஆஸ்லேஷா": "ஆயில்யம்",
	// 9
	"Magha": "மகம்", "Makha": "மகம்", "Magam": "மகம்", "Makam": "மகம்", "மகா": "மகம்", "மாகம்": "மகம்",
	// 10
	"Purva Phalguni": "பூரம்", "Poorva Phalguni": "பூரம்", "Purvaphalguni": "பூரம்", "Pooram": "பூரம்",
	"Puram": "பூரம்", "பூர்வ பல்குனி": "பூரம்", "பூர்வபால்குனி": "பூரம்",
	// 11
	"Uttara Phalguni": "உத்திரம்", "Uttaraphalguni": "உத்திரம்", "Uthiram": "உத்திரம்", "Uthram": "உத்திரம்",
	"Uttram": "உத்திரம்", "உத்தர பல்குனி": "உத்திரம்", "உத்ரம்": "உத்திரம்",
	// 12
	"Hasta": "அஸ்தம்", "Hastha": "அஸ்தம்", "Hastham": "அஸ்தம்", "Astham": "அஸ்தம்", "Atham": "அஸ்தம்",
	"ஹஸ்தம்": "அஸ்தம்", "ஹஸ்தா": "அஸ்தம்", "அத்தம்": "அஸ்தம்",
	// 13
	"Chitra": "சித்திரை", "Chithra": "சித்திரை", "Chithirai": "சித்திரை", "Chitta": "சித்திரை",
	"Chithira": "சித்திரை", "சித்ரா": "சித்திரை", "சித்திரா": "சித்திரை",
	// 14
	"Swati": "சுவாதி", "Swathi": "சுவாதி", "Svati": "சுவாதி", "Chothi": "சுவாதி",
	"ஸ்வாதி": "சுவாதி", "சுவாதீ": "சுவாதி",
	// 15
	"Vishakha": "விசாகம்", "Visakha": "விசாகம்", "Vishaka": "விசாகம்", "Visakam": "விசாகம்",
	"Vishakam": "விசாகம்", "Vishakham": "விசாகம்", "விசாகா": "விசாகம்", "விஷாகம்": "விசாகம்",
	// 16
	"Anuradha": "அனுஷம்", "Anurada": "அனுஷம்", "Anusham": "அனுஷம்", "Anizham": "அனுஷம்",
	"அனுடம்": "அனுஷம்", "அனுராதா": "அனுஷம்",
	// 17
	"Jyeshtha": "கேட்டை", "Jyeshta": "கேட்டை", "Jyestha": "கேட்டை", "Kettai": "கேட்டை",
	"Ketai": "கேட்டை", "Thrikketta": "கேட்டை", "ஜேஷ்டா": "கேட்டை", "கேட்டா": "கேட்டை",
	// 18
	"Mula": "மூலம்", "Moola": "மூலம்", "Moolam": "மூலம்", "Mulam": "மூலம்", "மூலா": "மூலம்",
	// 19
	"Purva Ashadha": "பூராடம்", "Purvashadha": "பூராடம்", "Poorvashada": "பூராடம்", "Pooradam": "பூராடம்",
	"Puradam": "பூராடம்", "பூர்வாஷாடா": "பூராடம்",
	// 20
	"Uttara Ashadha": "உத்திராடம்", "Uttarashadha": "உத்திராடம்", "Uthiradam": "உத்திராடம்",
	"Uthradam": "உத்திராடம்", "உத்ராடம்": "உத்திராடம்", "உத்தராஷாடா": "உத்திராடம்",
	// 21
	"Shravana": "திருவோணம்", "Sravana": "திருவோணம்", "Shravan": "திருவோணம்", "Thiruvonam": "திருவோணம்",
	"Onam": "திருவோணம்", "ஓணம்": "திருவோணம்", "சிரவணம்": "திருவோணம்", "திருவோனம்": "திருவோணம்",
	// 22
	"Dhanishta": "அவிட்டம்", "Dhanishtha": "அவிட்டம்", "Dhanista": "அவிட்டம்", "Avittam": "அவிட்டம்",
	"Shravishtha": "அவிட்டம்", "தனிஷ்டா": "அவிட்டம்",
	// 23
	"Shatabhisha": "சதயம்", "Shatabhishak": "சதயம்", "Satabhisha": "சதயம்", "Sadhayam": "சதயம்",
	"Sathayam": "சதயம்", "Chathayam": "சதயம்", "சதையம்": "சதயம்", "சதபிஷா": "சதயம்",
	// 24
	"Purva Bhadrapada": "பூரட்டாதி", "Purvabhadra": "பூரட்டாதி", "Poorva Bhadrapada": "பூரட்டாதி",
	"Poorattathi": "பூரட்டாதி", "Purattathi": "பூரட்டாதி", "பூரட்டாதீ": "பூரட்டாதி", "பூர்வ பாத்ரபதா": "பூரட்டாதி",
	// 25
	"Uttara Bhadrapada": "உத்திரட்டாதி", "Uttarabhadra": "உத்திரட்டாதி", "Uthirattathi": "உத்திரட்டாதி",
	"Uthrattathi": "உத்திரட்டாதி", "உத்ரட்டாதி": "உத்திரட்டாதி", "உத்திரட்டாதீ": "உத்திரட்டாதி",
	// 26
	"Revati": "ரேவதி", "Revathi": "ரேவதி", "Revathy": "ரேவதி", "ரேவதீ": "ரேவதி",
}

// Direct is a spelling that sits phonetically between two canonical names.
// It is checked before the variant table, by equality and then containment
type Direct struct {
	Spelling string
	Index    int
}

var directSource = []Direct{
	{"ரோஹிணி", 3},
	{"ரோகினி", 3},
	{"ரோஹினி", 3},
	{"மிருகசீரிஷம்", 4},
	{"மிருகசீர்ஷம்", 4},
}

// VariantMap returns a copy of the alternate spelling table
func VariantMap() map[string]string {
	return maps.Clone(variantSource)
}

// DirectVariants returns a copy of the hand mapped spellings
func DirectVariants() []Direct {
	return slices.Clone(directSource)
}
