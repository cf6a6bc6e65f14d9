package domain

// ActionGenerateContent é a capacidade exigida de um modelo para gerar narrativas
const ActionGenerateContent = "generateContent"

// ModelInfo descreve um modelo enumerado pela API junto com suas capacidades
type ModelInfo struct {
	Name             string
	SupportedActions []string
}

// SupportsGeneration verifica se o modelo aceita geração de texto livre
func (m ModelInfo) SupportsGeneration() bool {
	for _, action := range m.SupportedActions {
		if action == ActionGenerateContent {
			return true
		}
	}
	return false
}

// ModelCapability é o resultado da descoberta de capacidade de uma execução:
// o identificador resolvido do motor de raciocínio e se a descoberta funcionou.
// Available=false coloca a execução em modo demo, nunca a aborta.
type ModelCapability struct {
	ModelName string `json:"model_name,omitempty"`
	Available bool   `json:"available"`
}

// GenerationSettings é a configuração de geração compartilhada, somente leitura,
// reutilizada em todas as chamadas de clientes de uma execução
type GenerationSettings struct {
	Temperature float32
	TopK        float32
}
