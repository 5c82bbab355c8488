package model

type Subject struct {
	ID     int64  `json:"id"`
	NameAr string `json:"name_ar"`
	NameEn string `json:"name_en"`
}

// Name returns the localized subject name.
func (s Subject) Name(lang string) string {
	if lang == "ar" && s.NameAr != "" {
		return s.NameAr
	}
	return s.NameEn
}

// Lookup is the aggregate reference data behind GET /data/all,
// used to populate form selects.
type Lookup struct {
	Students []User    `json:"students"`
	Teachers []User    `json:"teachers"`
	Subjects []Subject `json:"subjects"`
	Plans    []Plan    `json:"plans"`
}
