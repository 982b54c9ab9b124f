// Package prompt assembles the analysis prompt sent to the model for each question.
package prompt

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/espectros/analista-tritoes/pkg/sheet"
)

// ColumnMeaning documents one spreadsheet column for the model.
type ColumnMeaning struct {
	Column  string `yaml:"column"`
	Meaning string `yaml:"meaning"`
}

//go:embed glossary.yaml
var glossaryYAML []byte

var glossary = mustParseGlossary(glossaryYAML)

func mustParseGlossary(data []byte) []ColumnMeaning {
	var entries []ColumnMeaning
	if err := yaml.Unmarshal(data, &entries); err != nil {
		panic(fmt.Sprintf("prompt: parse glossary: %v", err))
	}
	return entries
}

// Glossary returns the column glossary in prompt order.
func Glossary() []ColumnMeaning {
	return append([]ColumnMeaning(nil), glossary...)
}

const persona = `Você é um assistente especialista em análise de dados de futebol americano.
Sua tarefa é analisar os dados da planilha fornecida e responder à pergunta do usuário de forma clara e objetiva. Por exemplo: "Qual a porcentagem de passes e corridas?" Você deve usar os dados da planilha para embasar sua resposta, achar as ocorrencia, gerar as estatisticas e retornar o resultado de forma concisa.`

const instructions = `**INSTRUÇÕES:**
- Utilize os dados da planilha para embasar suas respostas.
- Seja conciso e direto ao ponto.
- Não inclua informações irrelevantes ou supérfluas.`

const closing = "Analise a planilha com extremo cuidado e detalhes, para que as respostas sejam retornadas da melhor forma possível."

// Build renders the full prompt for one question. The table is read, never modified.
func Build(table *sheet.Table, question string) string {
	var sb strings.Builder
	sb.WriteString(persona)
	sb.WriteString("\n")
	sb.WriteString(instructions)
	sb.WriteString("\n\n")
	sb.WriteString(GlossaryText())
	sb.WriteString("\n\n")
	sb.WriteString(closing)
	sb.WriteString("\n```\n")
	sb.WriteString(table.Render())
	sb.WriteString("\n```\n\n")
	sb.WriteString("**PERGUNTA DO USUÁRIO:**\n")
	sb.WriteString(`"` + question + `"`)
	sb.WriteString("\n\n**SUA ANÁLISE:**\n")
	return sb.String()
}

// GlossaryText renders the glossary section of the prompt.
func GlossaryText() string {
	var sb strings.Builder
	sb.WriteString("**NOMENCLATURA DAS COLUNAS**")
	for _, entry := range glossary {
		sb.WriteString(fmt.Sprintf("\n%s = %s", entry.Column, entry.Meaning))
	}
	return sb.String()
}
