package ports

// DocumentParser converts structured text into a generic value.
//
//go:generate mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type DocumentParser interface {
	// Parse decodes data. Empty input decodes to a nil value.
	Parse(data []byte) (any, error)
}
