package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// RunRecord describes one completed evolution run.
type RunRecord struct {
	VersionedRecord
	ID                  string  `json:"id"`
	CreatedAtUTC        string  `json:"created_at_utc"`
	Problem             string  `json:"problem"`
	Seed                int64   `json:"seed"`
	PopulationSize      int     `json:"population_size"`
	GenomeLen           int     `json:"genome_len"`
	Generations         int     `json:"generations"`
	MutationChance      float64 `json:"mutation_chance"`
	MutationCoefficient float64 `json:"mutation_coefficient"`
	FinalBestFitness    float64 `json:"final_best_fitness"`
}

// GenerationRecord is one generation's fitness summary as persisted.
type GenerationRecord struct {
	Generation int     `json:"generation"`
	Best       float64 `json:"best"`
	Worst      float64 `json:"worst"`
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	StdDev     float64 `json:"std_dev"`
}

// BestRecord is the best individual found over a whole run.
type BestRecord struct {
	VersionedRecord
	RunID   string    `json:"run_id"`
	Fitness float64   `json:"fitness"`
	Genes   []float64 `json:"genes"`
}
