package service

// Textos enviados ao cliente em cada etapa da conversa
const (
	msgWelcome = "🥩 *Bem-vindo ao Açougue do Benício!* 🥩\n" +
		"Por favor, escolha uma das opções abaixo:\n\n" +
		"1. Carnes Suínas\n" +
		"2. Carnes Bovinas\n" +
		"3. Peixes\n\n" +
		"Digite o número correspondente à sua escolha e nós estaremos prontos para atendê-lo! 🛒"

	msgInvalidMenuOption = "Opção inválida. Por favor, digite o número correspondente à sua escolha " +
		"ou \"ver carrinho\" para consultar seu carrinho."

	msgInvalidProduct = "Opção inválida. Por favor, escolha um número válido."

	msgEmptyCart = "Seu carrinho está vazio."

	msgCartPrompt = "Digite \"pagar\" para prosseguir para o pagamento " +
		"ou \"adicionar mais\" para adicionar mais produtos."

	msgInvalidCartOption = "Resposta inválida. Digite \"pagar\" para prosseguir para o pagamento, " +
		"ou \"adicionar mais\" para adicionar mais produtos."

	msgPaymentPrompt = "Qual forma de pagamento?\n1. Pix\n2. Crédito/Débito"

	msgPixChosen  = "Você escolheu pagamento por Pix. Obrigado pela sua compra!"
	msgCardChosen = "Você escolheu pagamento por Crédito/Débito. Obrigado pela sua compra!"

	msgInvalidPayment = "Forma de pagamento inválida. Digite \"1\" para Pix ou \"2\" para Crédito/Débito."

	msgInternalError = "Ocorreu um erro ao processar sua mensagem. Tente novamente."
)
