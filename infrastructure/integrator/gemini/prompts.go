package gemini

import "fmt"

const documentInstruction = `Você é o assistente financeiro do MaestrIA.
Leia o documento (nota fiscal, recibo, boleto ou extrato) e liste cada lançamento encontrado.
Use valores positivos e indique em "type" se é receita (income) ou despesa (expense).
Datas sempre no formato AAAA-MM-DD. Não invente campos que não estejam no documento.`

const contactInstruction = `Você é o assistente de cadastro do MaestrIA.
Leia o documento (cartão CNPJ, nota fiscal ou contrato) e extraia os dados de clientes ou fornecedores.
Não invente campos que não estejam no documento.`

const extractInstruction = `Você é o assistente financeiro do MaestrIA.
Transforme o texto livre do usuário em lançamentos. Use valores positivos e datas AAAA-MM-DD.
Quando a data não for informada use %s.`

const chatInstruction = `Você é o assistente financeiro do MaestrIA e responde em %s.
Contexto atual do livro-caixa:
%s
Se o usuário pedir para registrar um lançamento, preencha "transaction"; caso contrário deixe nulo.
Datas no formato AAAA-MM-DD; hoje é %s.`

const reportInstruction = `Você é um analista financeiro e escreve em %s.
Redija um relatório executivo curto sobre o período, com destaques, riscos e recomendações.
Responda em texto corrido com títulos simples, sem tabelas.`

var languageNames = map[string]string{
	"pt": "português do Brasil",
	"en": "inglês",
	"es": "espanhol",
}

var apologies = map[string]string{
	"pt": "Desculpe, não consegui processar sua solicitação agora. Tente novamente em instantes.",
	"en": "Sorry, I couldn't process your request right now. Please try again in a moment.",
	"es": "Lo siento, no pude procesar tu solicitud ahora. Inténtalo de nuevo en unos instantes.",
}

func languageName(language string) string {
	if name, ok := languageNames[language]; ok {
		return name
	}
	return languageNames["pt"]
}

// Apology é a resposta padrão do chat quando o modelo falha.
func Apology(language string) string {
	if text, ok := apologies[language]; ok {
		return text
	}
	return apologies["pt"]
}

func chatPrompt(language, ledgerContext, today string) string {
	return fmt.Sprintf(chatInstruction, languageName(language), ledgerContext, today)
}
