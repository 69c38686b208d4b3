package domain

// BatchMetadata descreve o processamento de um lote para observabilidade.
// GroupFailures acumula mensagens de falha por grupo sem bloquear o retorno
// dos resultados parciais.
type BatchMetadata struct {
	BatchID       string   `json:"batch_id"`
	TotalDomains  int      `json:"total_domains"`
	Groups        int      `json:"groups"`
	CacheHits     int      `json:"cache_hits"`
	CacheMisses   int      `json:"cache_misses"`
	GroupFailures []string `json:"group_failures,omitempty"`
}

// BatchResult é a resposta completa de uma verificação de tráfego: um
// registro por domínio solicitado (pós-normalização e deduplicação), na
// ordem original do chamador, mais os metadados do lote.
type BatchResult struct {
	Records  []*TrafficRecord `json:"records"`
	Metadata BatchMetadata    `json:"metadata"`
}

// AvailablePeriods representa os períodos mensais disponíveis na tabela de snapshots
type AvailablePeriods struct {
	Periods []string `json:"periods"` // Lista de períodos no formato YYYY-MM
	Years   []string `json:"years"`   // Lista de anos únicos disponíveis
	Months  []string `json:"months"`  // Lista de meses únicos disponíveis
}
