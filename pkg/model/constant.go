package model

const (
	// Longest sequence_preview before truncation.
	PREVIEW_LENGTH   = 50
	PREVIEW_ELLIPSIS = "..."

	UNKNOWN_LABEL = "Unknown"

	// Nucleotides accepted by the classifier.
	NUCLEOTIDES = "ATGC"
)

type ModelInfo struct {
	Name           string   `json:"name"`
	Version        string   `json:"version"`
	Description    string   `json:"description"`
	SupportedGenes []string `json:"supported_genes"`
	ModelType      string   `json:"model_type"`
}

var MODEL_INFO = ModelInfo{
	Name:           "Gene Sequence Species Classifier",
	Version:        "1.0.0",
	Description:    "Stacked ensemble model for species identification from gene sequences",
	SupportedGenes: []string{"COI", "16S", "18S", "ITS", "General"},
	ModelType:      "Stacked Ensemble (LightGBM + XGBoost + Meta Classifier)",
}

// Copy returns a ModelInfo that shares no memory with the receiver.
func (m ModelInfo) Copy() ModelInfo {
	genes := make([]string, len(m.SupportedGenes))
	copy(genes, m.SupportedGenes)
	m.SupportedGenes = genes
	return m
}
