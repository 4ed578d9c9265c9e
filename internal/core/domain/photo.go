package domain

// Photo is stored photo metadata for an animal. Upload and file serving are
// handled outside this service; the core only reads metadata to decorate
// responses.
type Photo struct {
	PhotoID   string `json:"photoID"`
	AnimalID  string `json:"animalID"`
	FilePath  string `json:"filePath"`
	FileName  string `json:"fileName"`
	SortOrder int    `json:"sortOrder"`
	AuditFields
}
