package report

// The closed lists offered by the form. Values are sent to the model verbatim.
var (
	Companies = []string{
		"Randstad Brasil",
		"Randstad Argentina",
		"Randstad Chile",
		"Randstad Uruguai",
		"Randstad Holanda",
	}

	Quarters = []string{"Q1", "Q2", "Q3", "Q4"}

	Years = []int{2021, 2022, 2023, 2024, 2025}

	Languages = []string{"Português", "Inglês", "Espanhol", "Francês", "Alemão"}

	Analyses = []string{
		"Análise do Balanço Patrimonial",
		"Análise do Fluxo de Caixa",
		"Análise de Tendências",
		"Análise de Receita e Lucro",
		"Análise de Posição de Mercado",
		"Análise de Rentabilidade",
		"Análise de Liquidez",
		"Análise de Solvência",
		"Análise de Eficiência",
		"Análise de Valor Econômico Adicionado (EVA)",
		"Análise de Retorno sobre o Investimento (ROI)",
		"Análise de Valor de Mercado",
		"Análise de Capital de Giro",
	}
)

// Options is the JSON shape of the catalog served to clients.
type Options struct {
	Companies []string `json:"companies"`
	Quarters  []string `json:"quarters"`
	Years     []int    `json:"years"`
	Languages []string `json:"languages"`
	Analyses  []string `json:"analyses"`
}

// Catalog returns a copy of every selection list.
func Catalog() Options {
	return Options{
		Companies: append([]string(nil), Companies...),
		Quarters:  append([]string(nil), Quarters...),
		Years:     append([]int(nil), Years...),
		Languages: append([]string(nil), Languages...),
		Analyses:  append([]string(nil), Analyses...),
	}
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsInt(list []int, v int) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
