package bot

import (
	"encoding/json"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/beniciojr/acougue_bot/internal/charts"
	"github.com/beniciojr/acougue_bot/internal/service"
)

// Bot é o adaptador do canal: recebe as mensagens do Telegram, repassa o
// texto para o fluxo de pedidos e envia a resposta. Toda a lógica da
// conversa vive no OrderFlow.
type Bot struct {
	api         *tgbotapi.BotAPI
	flow        *service.OrderFlow
	charts      *charts.ChartGenerator
	adminChatID int64
}

func NewBot(token string, flow *service.OrderFlow, adminChatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:         api,
		flow:        flow,
		charts:      charts.NewChartGenerator(),
		adminChatID: adminChatID,
	}, nil
}

// Start inicia o bot em modo long polling
func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	log.Println("Bot está pronto e conectado!")

	for update := range updates {
		if err := b.handleUpdate(update); err != nil {
			// Registra o erro, mas continua atendendo
			log.Printf("Error handling update: %v", err)
		}
	}

	return nil
}

// HandleWebhook - ponto de entrada para atualizações recebidas via webhook
func (b *Bot) HandleWebhook(body []byte) error {
	var update tgbotapi.Update
	if err := json.Unmarshal(body, &update); err != nil {
		return err
	}

	return b.handleUpdate(update)
}
