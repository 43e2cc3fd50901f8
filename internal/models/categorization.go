package models

// CategorizationStats reports the outcome of one categorization pass
type CategorizationStats struct {
	Processed     int `json:"processed"`
	Matched       int `json:"matched"`
	Uncategorized int `json:"uncategorized"`
	Preserved     int `json:"preserved"`
}

// IngestResult describes a successful ingestion
type IngestResult struct {
	Records       int `json:"records"`
	Matched       int `json:"matched"`
	Uncategorized int `json:"uncategorized"`
	UndatedRows   int `json:"undated_rows"`
}
