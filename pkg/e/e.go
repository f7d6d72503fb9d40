package e

import "fmt"

var (
	// Конфигурация
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// Каталог
	ErrEmptyCatalog       = fmt.Errorf("catalog is empty")
	ErrDuplicateProductID = fmt.Errorf("duplicate product id")
	ErrEmptyProductID     = fmt.Errorf("product id is required")
	ErrNegativePrice      = fmt.Errorf("price must not be negative")
	ErrNegativeStock      = fmt.Errorf("stock must not be negative")

	// Кэш
	ErrCacheMiss = fmt.Errorf("cache miss")

	// 400 Bad Request
	ErrInvalidRequestBody = fmt.Errorf("invalid request body")
	ErrUnknownCategory    = fmt.Errorf("unknown category")
	ErrUnknownPanel       = fmt.Errorf("unknown ui panel")
	ErrEmptyMessage       = fmt.Errorf("message text is empty")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")

	// 409 Conflict
	ErrAssistantBusy = fmt.Errorf("assistant is already answering")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	// Ассистент
	ErrAssistantNotConfigured = fmt.Errorf("assistant api key is not configured")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
