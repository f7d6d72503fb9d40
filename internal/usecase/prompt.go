package usecase

import (
	"fmt"
	"strings"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
)

// CatalogContext перечисляет товары построчно: "- {name} (${price}): {description} (ID: {id})".
func CatalogContext(products []domain.Product) string {
	var b strings.Builder
	for i, p := range products {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- %s ($%s): %s (ID: %s)", p.Name, p.Price.StringFixed(2), p.Description, p.ID)
	}
	return b.String()
}

// BuildSystemInstruction собирает инструкцию для модели: персона, каталог и правила ответа.
func BuildSystemInstruction(storeCfg *cfg.StoreCfg, products []domain.Product) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Eres %q, un asistente virtual experto en ferretería y bricolaje para la tienda %q.\n",
		storeCfg.AssistantName, storeCfg.Name)
	b.WriteString("Tu objetivo es ayudar a los clientes a elegir los productos adecuados para sus proyectos, " +
		"explicar cómo usarlos y dar consejos de seguridad.\n\n")

	b.WriteString("Tienes acceso al siguiente catálogo de productos de la tienda:\n")
	b.WriteString(CatalogContext(products))
	b.WriteString("\n\n")

	b.WriteString("Reglas:\n")
	b.WriteString("1. Sé amable, profesional y práctico. Usa un tono de \"experto de confianza\".\n")
	b.WriteString("2. Cuando recomiendes un producto, menciona su precio y por qué es útil para el problema del usuario.\n")
	b.WriteString("3. Si el usuario pregunta por algo que NO está en el catálogo, sugiere una alternativa del catálogo " +
		"si es viable, o di amablemente que no lo tenemos.\n")
	b.WriteString("4. Tus respuestas deben ser concisas (máximo 3-4 oraciones) a menos que se requiera una explicación paso a paso.\n")
	fmt.Fprintf(&b, "5. Responde siempre en %s.\n", storeCfg.Language)

	return b.String()
}
