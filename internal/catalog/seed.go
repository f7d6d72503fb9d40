package catalog

import (
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// SeedProducts возвращает встроенный каталог магазина. Используется, когда Postgres не настроен
// или недоступен. db/migrations содержит те же товары.
func SeedProducts() []domain.Product {
	return []domain.Product{
		*domain.NewProduct("1", "Taladro Percutor 750W", "Taladro de alta potencia para concreto y madera. Incluye maletín.",
			decimal.RequireFromString("85.99"), domain.CategoryTools, "https://picsum.photos/400/300?random=1", 15),
		*domain.NewProduct("2", "Set de Destornilladores Pro", "Juego de 12 destornilladores con punta magnética y mango ergonómico.",
			decimal.RequireFromString("24.50"), domain.CategoryTools, "https://picsum.photos/400/300?random=2", 40),
		*domain.NewProduct("3", "Pintura Blanca Interior 20L", "Pintura látex lavable de alto cubrimiento, acabado mate.",
			decimal.RequireFromString("65.00"), domain.CategoryPaint, "https://picsum.photos/400/300?random=3", 10),
		*domain.NewProduct("4", "Rodillo Antigota 22cm", "Rodillo profesional para superficies lisas, evita salpicaduras.",
			decimal.RequireFromString("8.90"), domain.CategoryPaint, "https://picsum.photos/400/300?random=4", 100),
		*domain.NewProduct("5", "Cemento Portland 50kg", "Cemento gris de uso general para construcción y reparaciones.",
			decimal.RequireFromString("12.50"), domain.CategoryConstruction, "https://picsum.photos/400/300?random=5", 50),
		*domain.NewProduct("6", `Llave Inglesa Ajustable 10"`, "Acero al cromo vanadio, apertura máxima 30mm.",
			decimal.RequireFromString("15.75"), domain.CategoryTools, "https://picsum.photos/400/300?random=6", 25),
		*domain.NewProduct("7", `Tubo PVC 1/2" 3m`, "Tubería para agua fría, alta resistencia a la presión.",
			decimal.RequireFromString("4.20"), domain.CategoryPlumbing, "https://picsum.photos/400/300?random=7", 200),
		*domain.NewProduct("8", "Cinta Métrica 5m", "Cinta métrica robusta con freno y clip para cinturón.",
			decimal.RequireFromString("6.50"), domain.CategoryTools, "https://picsum.photos/400/300?random=8", 60),
		*domain.NewProduct("9", "Juego de Brocas Muro", "Set de 5 brocas para concreto de diferentes medidas.",
			decimal.RequireFromString("11.00"), domain.CategoryTools, "https://picsum.photos/400/300?random=9", 35),
		*domain.NewProduct("10", "Bombilla LED 10W (Pack 3)", "Luz blanca fría, ahorro energético A+.",
			decimal.RequireFromString("9.99"), domain.CategoryElectrical, "https://picsum.photos/400/300?random=10", 80),
		*domain.NewProduct("11", "Carretilla de Obra", "Estructura metálica reforzada y rueda neumática.",
			decimal.RequireFromString("45.00"), domain.CategoryConstruction, "https://picsum.photos/400/300?random=11", 5),
		*domain.NewProduct("12", "Manguera de Jardín 15m", "Manguera reforzada con boquilla de riego ajustable.",
			decimal.RequireFromString("18.90"), domain.CategoryGarden, "https://picsum.photos/400/300?random=12", 22),
	}
}
