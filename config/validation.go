package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error [%s]: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("found %d configuration error(s):\n", len(errs)))
	for i, err := range errs {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Message))
	}
	return b.String()
}

// Validate validates the complete configuration
func (c *Config) Validate() error {
	var errs ValidationErrors

	errs = append(errs, c.validateLLM()...)
	errs = append(errs, c.validateEmbedding()...)
	errs = append(errs, c.validateVectorDB()...)
	errs = append(errs, c.validateAdvisor()...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (c *Config) validateLLM() ValidationErrors {
	var errs ValidationErrors

	if c.LLM.Provider == "" {
		errs = append(errs, ValidationError{
			Field:   "llm.provider",
			Message: "llm provider is required",
		})
	}
	if c.LLM.Model == "" {
		errs = append(errs, ValidationError{
			Field:   "llm.model",
			Message: "llm model is required",
		})
	}
	if c.LLM.FallbackModel == c.LLM.Model && c.LLM.FallbackModel != "" {
		errs = append(errs, ValidationError{
			Field:   "llm.fallback_model",
			Message: "fallback model must differ from the primary model",
		})
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		errs = append(errs, ValidationError{
			Field:   "llm.temperature",
			Message: fmt.Sprintf("temperature %v is outside [0, 2]", c.LLM.Temperature),
		})
	}

	return errs
}

func (c *Config) validateEmbedding() ValidationErrors {
	var errs ValidationErrors

	if c.Embedding.Provider == "" {
		errs = append(errs, ValidationError{
			Field:   "embedding.provider",
			Message: "embedding provider is required",
		})
	}
	if c.Embedding.Model == "" {
		errs = append(errs, ValidationError{
			Field:   "embedding.model",
			Message: "embedding model is required",
		})
	}
	if c.Embedding.Dimensions <= 0 {
		errs = append(errs, ValidationError{
			Field:   "embedding.dimensions",
			Message: fmt.Sprintf("embedding dimensions must be positive, got %d", c.Embedding.Dimensions),
		})
	}
	// Dimensionality must be sane and match the deployed index.
	if c.Embedding.Dimensions > 0 && (c.Embedding.Dimensions < 128 || c.Embedding.Dimensions > 4096) {
		errs = append(errs, ValidationError{
			Field:   "embedding.dimensions",
			Message: fmt.Sprintf("embedding dimensions %d is outside typical range [128, 4096]", c.Embedding.Dimensions),
		})
	}

	return errs
}

func (c *Config) validateVectorDB() ValidationErrors {
	var errs ValidationErrors

	if c.VectorDB.Provider == "" {
		errs = append(errs, ValidationError{
			Field:   "vectordb.provider",
			Message: "vectordb provider is required",
		})
	}

	switch strings.ToLower(c.VectorDB.Provider) {
	case "milvus":
		if c.VectorDB.Host == "" {
			errs = append(errs, ValidationError{
				Field:   "vectordb.host",
				Message: "vectordb host is required for milvus provider",
			})
		}
		if c.VectorDB.Port <= 0 || c.VectorDB.Port > 65535 {
			errs = append(errs, ValidationError{
				Field:   "vectordb.port",
				Message: fmt.Sprintf("vectordb port %d is invalid", c.VectorDB.Port),
			})
		}
	case "":
		// already reported above
	default:
		errs = append(errs, ValidationError{
			Field:   "vectordb.provider",
			Message: fmt.Sprintf("unsupported vectordb provider %q", c.VectorDB.Provider),
		})
	}

	if c.VectorDB.ProfileCollection == "" {
		errs = append(errs, ValidationError{
			Field:   "vectordb.profile_collection",
			Message: "profile collection is required",
		})
	}
	if c.VectorDB.StockCollection == "" {
		errs = append(errs, ValidationError{
			Field:   "vectordb.stock_collection",
			Message: "stock collection is required",
		})
	}

	return errs
}

func (c *Config) validateAdvisor() ValidationErrors {
	var errs ValidationErrors

	if c.Advisor.ProfileTopK < 0 {
		errs = append(errs, ValidationError{
			Field:   "advisor.profile_top_k",
			Message: fmt.Sprintf("profile_top_k must not be negative, got %d", c.Advisor.ProfileTopK),
		})
	}
	if c.Advisor.StockTopK < 0 {
		errs = append(errs, ValidationError{
			Field:   "advisor.stock_top_k",
			Message: fmt.Sprintf("stock_top_k must not be negative, got %d", c.Advisor.StockTopK),
		})
	}
	if c.Advisor.Threshold < 0 || c.Advisor.Threshold > 1 {
		errs = append(errs, ValidationError{
			Field:   "advisor.threshold",
			Message: fmt.Sprintf("threshold %v is outside [0, 1]", c.Advisor.Threshold),
		})
	}

	return errs
}
