package config

// Config is the top-level configuration for the advisory service.
type Config struct {
	Advisor   AdvisorConfig   `json:"advisor" yaml:"advisor"`
	LLM       LLMConfig       `json:"llm" yaml:"llm"`
	Embedding EmbeddingConfig `json:"embedding" yaml:"embedding"`
	VectorDB  VectorDBConfig  `json:"vectordb" yaml:"vectordb"`
	Log       LogConfig       `json:"log,omitempty" yaml:"log,omitempty"`
}

// AdvisorConfig tunes the retrieval pipeline shared by the advisory chat
// and the stock screener.
type AdvisorConfig struct {
	// ProfileTopK is how many knowledge-base records back an advisory
	// answer.
	ProfileTopK int `json:"profile_top_k,omitempty" yaml:"profile_top_k,omitempty"`
	// StockTopK is how many candidates a stock screen retrieves before
	// deduplication.
	StockTopK int `json:"stock_top_k,omitempty" yaml:"stock_top_k,omitempty"`
	// Threshold drops search hits scoring below it. Zero disables the cut.
	Threshold float64 `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	// MaxContextTokens bounds the assembled context block. Zero means
	// unbounded.
	MaxContextTokens int `json:"max_context_tokens,omitempty" yaml:"max_context_tokens,omitempty"`
	// HistoryRounds is how many past Q/A rounds are replayed into the
	// advisory conversation.
	HistoryRounds int `json:"history_rounds,omitempty" yaml:"history_rounds,omitempty"`
	// EmbeddingCacheSize enables an in-process LRU for query embeddings
	// when positive.
	EmbeddingCacheSize int `json:"embedding_cache_size,omitempty" yaml:"embedding_cache_size,omitempty"`
}

// LLMConfig defines the chat-completion models.
type LLMConfig struct {
	Provider string `json:"provider" yaml:"provider"` // Available options: openai
	APIKey   string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	BaseURL  string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	// Model is the primary model. FallbackModel is tried once when the
	// primary call fails.
	Model         string  `json:"model" yaml:"model"`
	FallbackModel string  `json:"fallback_model,omitempty" yaml:"fallback_model,omitempty"`
	Temperature   float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	MaxTokens     int     `json:"max_tokens,omitempty" yaml:"max_tokens,omitempty"`
}

// EmbeddingConfig defines the embedding model. Dimensions must match the
// configured index.
type EmbeddingConfig struct {
	Provider   string `json:"provider" yaml:"provider"` // Available options: openai
	APIKey     string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	BaseURL    string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Model      string `json:"model,omitempty" yaml:"model,omitempty"`
	Dimensions int    `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
}

// VectorDBConfig defines the vector store holding the advisory knowledge
// base and the stock descriptions.
type VectorDBConfig struct {
	Provider string `json:"provider" yaml:"provider"` // Available options: milvus
	Host     string `json:"host,omitempty" yaml:"host,omitempty"`
	Port     int    `json:"port,omitempty" yaml:"port,omitempty"`
	Database string `json:"database,omitempty" yaml:"database,omitempty"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
	// ProfileCollection holds the embedded investor-profile dataset used
	// by the advisory chat.
	ProfileCollection string `json:"profile_collection,omitempty" yaml:"profile_collection,omitempty"`
	// StockCollection and StockNamespace locate the stock descriptions.
	StockCollection string `json:"stock_collection,omitempty" yaml:"stock_collection,omitempty"`
	StockNamespace  string `json:"stock_namespace,omitempty" yaml:"stock_namespace,omitempty"`
	// MetricType is the similarity metric of the deployed index, e.g. IP
	// or COSINE.
	MetricType string `json:"metric_type,omitempty" yaml:"metric_type,omitempty"`
	// SearchEf is the HNSW ef search parameter.
	SearchEf int `json:"search_ef,omitempty" yaml:"search_ef,omitempty"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `json:"level,omitempty" yaml:"level,omitempty"`   // debug, info, warn, error
	Format string `json:"format,omitempty" yaml:"format,omitempty"` // json or console
}

// Default returns the configuration mirroring the deployed indexes and
// models; a config file overrides it field by field.
func Default() *Config {
	return &Config{
		Advisor: AdvisorConfig{
			ProfileTopK:        5,
			StockTopK:          12,
			Threshold:          0,
			MaxContextTokens:   6144,
			HistoryRounds:      10,
			EmbeddingCacheSize: 256,
		},
		LLM: LLMConfig{
			Provider:      "openai",
			BaseURL:       "https://api.groq.com/openai/v1",
			Model:         "llama-3.1-70b-versatile",
			FallbackModel: "llama-3.1-8b-instant",
			Temperature:   0.5,
			MaxTokens:     2048,
		},
		Embedding: EmbeddingConfig{
			Provider:   "openai",
			Model:      "text-embedding-3-large",
			Dimensions: 1024,
		},
		VectorDB: VectorDBConfig{
			Provider:          "milvus",
			Host:              "localhost",
			Port:              19530,
			ProfileCollection: "finov1",
			StockCollection:   "stocks",
			StockNamespace:    "stock_description_detailed",
			MetricType:        "IP",
			SearchEf:          64,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
