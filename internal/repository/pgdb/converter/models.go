package converter

// ProductModel представляет запись таблицы products в PostgreSQL.
// Цена читается как текст (price::text), чтобы не терять точность numeric.
type ProductModel struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Price       string `db:"price"`
	Category    string `db:"category"`
	ImageRef    string `db:"image_ref"`
	Stock       int    `db:"stock"`
}
