package models

// Photo mirrors the photos table. Only metadata lives here; the files
// themselves are managed outside this service.
type Photo struct {
	PhotoID   string `db:"photo_id"`
	AnimalID  string `db:"animal_id"`
	FilePath  string `db:"file_path"`
	FileName  string `db:"file_name"`
	SortOrder int    `db:"sort_order"`
	AuditFields
}
