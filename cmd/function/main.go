package main

import (
	"context"

	"github.com/beniciojr/acougue_bot/internal/bot"
	"github.com/beniciojr/acougue_bot/internal/catalog"
	"github.com/beniciojr/acougue_bot/internal/config"
	"github.com/beniciojr/acougue_bot/internal/repository"
	"github.com/beniciojr/acougue_bot/internal/service"
)

// Request estrutura da requisição recebida do API Gateway
type Request struct {
	Body string `json:"body"`
}

// Response estrutura da resposta para o API Gateway
type Response struct {
	StatusCode int               `json:"statusCode"`
	Body       string            `json:"body"`
	Headers    map[string]string `json:"headers,omitempty"`
}

func Handler(ctx context.Context, request Request) (*Response, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return errorResponse(err)
	}

	// No modo webhook cada invocação é um processo novo, então o
	// armazenamento precisa ser o Supabase
	repo, err := repository.NewSupabaseRepository(cfg.SupabaseURL, cfg.SupabaseKey)
	if err != nil {
		return errorResponse(err)
	}

	flow := service.NewOrderFlow(repo, catalog.Default())

	bot, err := bot.NewBot(cfg.TelegramToken, flow, cfg.AdminChatID)
	if err != nil {
		return errorResponse(err)
	}

	if err := bot.HandleWebhook([]byte(request.Body)); err != nil {
		return errorResponse(err)
	}

	return &Response{
		StatusCode: 200,
		Body:       "",
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}

func errorResponse(err error) (*Response, error) {
	return &Response{
		StatusCode: 500,
		Body:       err.Error(),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}

func main() {
	// Ponto de entrada para testes locais
}
