package scripts

import "errors"

var ErrNotFound = errors.New("script not found")

// Script is one canned sales message kept per agent under their scripts
// sub-collection. Order drives the display position inside each category.
type Script struct {
	ID       string `json:"id" firestore:"-"`
	Category string `json:"category" firestore:"category"`
	Title    string `json:"title" firestore:"title"`
	Content  string `json:"content" firestore:"content"`
	Order    int    `json:"order" firestore:"order"`
}

// DefaultScripts is the starter set seeded for a new agent the first time
// their scripts are loaded. Orders are spaced per category so agents can
// slot custom scripts in between.
func DefaultScripts() []Script {
	return []Script{
		{
			Category: "Fraseologia",
			Title:    "Fraseologia Inicial",
			Content:  "Oi, tudo bem com você?\nSou <Agente>, consultor especialista da NIO e estou à sua disposição.\n\n1 - Já possuo\n2 - Aguardando instalação\n3 - Desejo contratar\n\nCaso deseje contratar, vou precisar que me informe os seguintes dados para verificar viabilidade:\n\n*CEP:*\n*Número de fachada: (quadra e lote se houver)*\n*Nome da rua:*",
			Order:    1,
		},
		{
			Category: "Ofertas",
			Title:    "Ofertas Básicas",
			Content:  "Viabilidade técnica 100% confirmada\n\nNIO Fibra 500 Megas - R$ 90,00 cartão de crédito\n\nNIO Fibra 700 Megas - R$ 120,00 cartão de crédito (Globo Play por 12 meses sem custo adicional)\n\nNIO Fibra 1 Giga + 1 ponto - R$ 150,00 cartão de crédito (Globo Play por 12 meses sem custo adicional)\n\nQual das ofertas você gostaria?",
			Order:    10,
		},
		{
			Category: "Ofertas",
			Title:    "Valor Fixo",
			Content:  "O valor é fixo até 2028, ou seja, você não sofrerá com nenhum reajuste até essa data.\n\nTambém vale ressaltar que a instalação é gratuita.",
			Order:    11,
		},
		{
			Category: "Ofertas",
			Title:    "Formas de Pagamento",
			Content:  "Qual será a forma de pagamento?\n\n1. Cartão de Crédito 💳\n2. Débito em conta 🧾\n3. Boleto 📄",
			Order:    12,
		},
		{
			Category: "Cartão de Crédito",
			Title:    "Informações importantes",
			Content:  "Olá. Como você optou pelo pagamento via cartão de crédito, gostaria de compartilhar algumas informações importantes:\n\n1. Assim que for realizado o cadastro do cartão de crédito, será feita uma pré-reserva do valor da primeira mensalidade. No dia da instalação da Fibra, essa pré-reserva é lançada como cobrança na fatura do cartão. Nos meses seguintes, o dia do lançamento da cobrança será o dia da instalação. A data de pagamento dependerá da data de vencimento do cartão.\n\n2. Após o agendamento, você receberá um link em seu e-mail e WhatsApp para cadastrar seu cartão de crédito. Para sua segurança e conveniência, o cadastro do cartão é realizado no conforto de sua casa. A NIO nunca solicitará dados do seu cartão por meio desse processo.\n\n3. É crucial que você cadastre o cartão o mais rápido possível, pois o link possui um prazo de expiração. Além disso, sua compra só será liberada após o cadastro. Qualquer dúvida ou assistência adicional, estou à disposição para ajudar.",
			Order:    20,
		},
		{
			Category: "Cartão de Crédito",
			Title:    "Avisar ao cliente que o link foi enviado",
			Content:  "*O link para cadastrar o cartão foi enviado com sucesso. Assim que finalizar o cadastro ou, caso encontre alguma dificuldade, por favor, me avise.*",
			Order:    21,
		},
		{
			Category: "Análise de Crédito",
			Title:    "Boleto / Cartão de Crédito",
			Content:  "Me informa por gentileza os seguintes dados para realizar a análise de crédito:\n\n- CPF ou CNPJ:\n- E-mail:\n- Telefone de contato sendo ele WhatsApp:\n- Ponto de referência:",
			Order:    30,
		},
		{
			Category: "Análise de Crédito",
			Title:    "Débito em Conta",
			Content:  "Me informa por gentileza os seguintes dados para realizar a análise de crédito:\n\n- CPF ou CNPJ:\n- E-mail:\n- Telefone de contato sendo ele WhatsApp:\n- Ponto de referência:\n- Banco:\n- Agência:\n- Conta:",
			Order:    31,
		},
		{
			Category: "Análise de Crédito",
			Title:    "Bancos disponíveis",
			Content:  "*Esses são os bancos disponíveis.*\n\n- Itaú\n- Bradesco\n- Banco do Brasil\n- Bansul\n- Santander\n- Next\n- Nubank\n- Inter\n- C6\n- PagSeguro",
			Order:    32,
		},
		{
			Category: "Análise de Crédito",
			Title:    "Biometria",
			Content:  "Agora vamos seguir com o cadastro de sua biometria. Você receberá um link da NIO, nossa assistente virtual, através do WhatsApp, número (21)3905-1000.\n\nCaso o link não tenha chegado eu peço por gentileza que adicione ela pelo número (21)3905-1000 e mande um Olá.\n\nA biometria deve ser feita pelo responsável do CPF informado.\n\nSe tiver qualquer dúvida ou precisar de ajuda, nossa equipe está aqui para te apoiar! 🤝",
			Order:    33,
		},
		{
			Category: "Análise de Crédito",
			Title:    "CPF Aprovado somente cartão de crédito",
			Content:  "➡ Olá! Tudo certo?\n\nVocê foi aprovado pro nosso plano de internet fibra ótica - é o melhor, com *desconto de R$10 por mês* pagando no cartão de crédito 🔥\n\nFunciona assim:\nA mensalidade vem direto na fatura do cartão, todo mês, sem precisar se preocupar com boletos ou atrasos. Mais praticidade no seu dia a dia e *economia garantindo todo mês*.\n\nAlém disso, *não ocupa limite total*, só o valor da mensalidade. Fácil, seguro e mais vantajoso.\n\nTopa aproveitar esse benefício agora mesmo? ✓",
			Order:    34,
		},
		{
			Category: "Agendamento",
			Title:    "Informar horários",
			Content:  "Tenho disponibilidade para realizar a instalação às <...> Seguem os horários disponíveis:\n\n*Manhã: 8h às 12h*\n*Tarde: 13h às 18h*\n\nQual período seria mais conveniente para você? 🤔",
			Order:    40,
		},
		{
			Category: "Agendamento",
			Title:    "Extra info",
			Content:  "Feito! ✅\n\n⚠ Só quero te lembrar que é muito importante que tenha um adulto (acima de 18 anos)\ncom documento com foto ( para receber nosso) técnico.\n\nEle irá no dia (data), no turno (matutino ou vespertino), das (período em horas).\n\nNo dia do agendamento você receberá uma mensagem da NIO, nossa assistente virtual, para confirmar a instalação, e é necessário confirmá-la!",
			Order:    41,
		},
		{
			Category: "Checklist",
			Title:    "Débito em Conta",
			Content:  "Vamos revisar a proposta juntos? Assim você pode tirar qualquer dúvida que tenha restado e alinhar qualquer detalhe necessário:\n\n📋 CPF:\n📋 Nome Completo:\n📋 Nome Completo Mãe:\n📅 Data nascimento:\n📍 Endereço:\n📋 Plano:\n💲 Valor:\n➖ Forma de pagamento:\n🏦 Banco: Agência: Conta:\n🗓 Data agendada de instalação:\n⏰ Período: | Horas:\n✅ E-mail:\n\n*Está tudo certo?*",
			Order:    50,
		},
		{
			Category: "Checklist",
			Title:    "Boleto / Cartão de Crédito",
			Content:  "Vamos revisar a proposta juntos? Assim você pode tirar qualquer dúvida que tenha restado e alinhar qualquer detalhe necessário:\n\n📋 CPF:\n📋 Nome Completo:\n📋 Nome Completo Mãe:\n📅 Data nascimento:\n📍 Endereço:\n📋 Plano:\n💲 Valor:\n➖ Forma de pagamento:\n🗓 Data agendada de instalação:\n⏰ Período: | Horas:\n✅ E-mail:\n\n*Está tudo certo?*",
			Order:    51,
		},
		{
			Category: "Avisos Finais",
			Title:    "Multa de cancelamento",
			Content:  "A oferta inclui uma taxa de fidelidade no valor de R$540,00. Essa taxa será aplicada somente se o serviço de banda larga for cancelado antes de completar 12 meses. Ela será cobrada de forma proporcional aos meses restantes, em uma única parcela. Durante os 12 meses, será aplicado um desconto automático de R$45,00 na taxa de fidelidade a cada mês de uso.\n\nNão se preocupe, esse desconto não afetará o valor contratado da sua futura mensal. Aqui está como funcionará a redução ao longo dos meses:\n\n1. mês de uso: R$540,00\n2. mês de uso: R$495,00\n3. mês de uso: R$450,00\n4. mês de uso: R$405,00\n5. mês de uso: R$360,00\n... e assim por diante até ser zerada ao fim dos 12 meses.",
			Order:    60,
		},
		{
			Category: "Avisos Finais",
			Title:    "Mais algumas informações",
			Content:  "1 - A NIO, nossa assistente virtual, enviou para você em seu WhatsApp todo o resumo da venda. Peço por gentileza que confirme para ela com um SIM ou 1, conforme solicitado.\n\n2 - Caso alguém entre em contato com você dizendo que sua venda teve algum erro, ou foi cancelada eu peço que você ignore pois pode ser alguma tentativa de fraude. A única pessoa que pode entrar em contato com você sou eu (Danilo, BC788068) e a auditoria da NIO para confirmar os dados da venda. Em momento algum será solicitado novos dados. Se houver qualquer erro que seja eu mesmo te ligo da nossa central e te informo.",
			Order:    61,
		},
		{
			Category: "Avisos Finais",
			Title:    "Aviso sobre DACC",
			Content:  "O valor cobrado na sua primeira fatura será proporcional aos dias instalados. Assim, você pagará um valor abaixo do contratado inicialmente. A partir da segunda fatura, será cobrado o valor contratado integralmente.\n\nÉ importante destacar que apenas a primeira fatura será enviada através de boleto para o seu e-mail e WhatsApp cadastrados. As demais faturas serão automaticamente debitadas.",
			Order:    62,
		},
		{
			Category: "Infos Úteis",
			Title:    "Recuperar Cliente",
			Content:  "✔ Se não tiver interesse em contratar o plano da NIO Fibra, por favor, informe o motivo selecionando o número correspondente:\n\n1. Já sou cliente NIO Fibra.\n2. Não tenho interesse no momento.\n3. Estou com contrato de fidelidade com outra operadora.\n4. Achei o preço elevado.\n0. Para prosseguir.",
			Order:    70,
		},
		{
			Category: "Infos Úteis",
			Title:    "Inviabilidade",
			Content:  "Olha só... verifiquei que a NIO Fibra ainda não chegou no seu endereço 😢 A notícia boa é que como a NIO está em expansão na sua região, vou continuar acompanhando e assim que for disponibilizada vou lembrar de você e entrarei em contato.",
			Order:    71,
		},
		{
			Category: "Infos Úteis",
			Title:    "Outros serviços",
			Content:  "*Oi* Sou especialista em *venda da NIO Fibra*, então não consigo tratar seu pedido por aqui. Você pode resolver tudo pelas nossas redes sociais, ou por telefone. Vou te passar nossos canais de atendimento:\n\n*Nio Whatsapp:* wa.me/552139051000\n*Atendimento Internet:* Ligue 08000311000",
			Order:    72,
		},
	}
}
