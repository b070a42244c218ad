package domain

// RuleChecklist contém o resultado das regras de alerta. As regras são independentes.
type RuleChecklist struct {
	LowActivity              bool `json:"low_activity"`
	NoConversionDespiteSpend bool `json:"no_conversion_despite_spend"`
	FrequencyAndCTRDrop      bool `json:"frequency_and_ctr_drop"`
}

// AnyTriggered indica se ao menos uma regra foi acionada
func (c RuleChecklist) AnyTriggered() bool {
	return c.LowActivity || c.NoConversionDespiteSpend || c.FrequencyAndCTRDrop
}
