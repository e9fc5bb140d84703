package models

// CatalogItem is a sellable product as the backend describes it. The POS never mutates it.
type CatalogItem struct {
	ID        int64  `json:"id" yaml:"id"`
	Name      string `json:"nome" yaml:"name"`
	Price     Money  `json:"preco" yaml:"price"`
	Available int    `json:"estoque" yaml:"available"`
	Category  string `json:"categoria" yaml:"category"`
}

type CatalogFile struct {
	Items []CatalogItem `yaml:"items"`
}
