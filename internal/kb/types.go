// Package kb loads and serves the curated resistance knowledge base.
package kb

// SeedFile is the YAML document shape for a curated knowledge-base seed.
type SeedFile struct {
	Entries []SeedEntry `yaml:"entries"`
}

// SeedEntry is one curated mutation record as written by curators.
type SeedEntry struct {
	Gene          string   `yaml:"gene"`
	Mutation      string   `yaml:"mutation"`
	Effect        string   `yaml:"effect"`
	Phenotype     string   `yaml:"phenotype"`
	StructuralRef string   `yaml:"structural_ref"`
	Literature    []string `yaml:"literature"`
	Source        string   `yaml:"source"`
}
