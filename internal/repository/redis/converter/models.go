package converter

// CatalogRedisModel — снимок каталога, хранимый одним ключом.
type CatalogRedisModel struct {
	Products []ProductRedisModel `json:"products"`
}

// ProductRedisModel хранит цену строкой, чтобы не терять точность decimal.
type ProductRedisModel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	ImageRef    string `json:"image_ref"`
	Stock       int    `json:"stock"`
}
