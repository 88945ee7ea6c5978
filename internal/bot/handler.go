package bot

import (
	"context"
	"fmt"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/beniciojr/acougue_bot/internal/model"
)

func (b *Bot) handleUpdate(update tgbotapi.Update) error {
	if update.Message == nil {
		return nil
	}

	if update.Message.IsCommand() && update.Message.Command() == "relatorio" {
		return b.handleReport(update.Message)
	}

	return b.handleMessage(update.Message)
}

// handleMessage repassa o texto recebido para o fluxo de pedidos e envia
// a resposta. Exatamente um envio por mensagem recebida.
func (b *Bot) handleMessage(message *tgbotapi.Message) error {
	userID := strconv.FormatInt(message.Chat.ID, 10)
	reply := b.flow.Dispatch(context.Background(), userID, message.Text)

	msg := tgbotapi.NewMessage(message.Chat.ID, reply)
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("error sending reply: %w", err)
	}
	return nil
}

// handleReport envia o resumo de vendas dos últimos 30 dias com o gráfico
// de faturamento. Só responde no chat do dono do açougue.
func (b *Bot) handleReport(message *tgbotapi.Message) error {
	if b.adminChatID == 0 || message.Chat.ID != b.adminChatID {
		// Para os demais usuários o comando é texto como outro qualquer
		return b.handleMessage(message)
	}

	since := time.Now().AddDate(0, 0, -30)
	report, err := b.flow.SalesReport(context.Background(), since)
	if err != nil {
		b.sendErrorMessage(message.Chat.ID, "Erro ao gerar o relatório de vendas")
		return err
	}

	text := fmt.Sprintf(
		"📊 Vendas desde %s\n\n"+
			"🧾 Pedidos: %d\n"+
			"🥩 Itens vendidos: %d\n"+
			"💵 Faturamento: R$ %.2f\n\n"+
			"Por forma de pagamento:\n"+
			"• Pix: R$ %.2f\n"+
			"• Crédito/Débito: R$ %.2f",
		since.Format("02/01/2006"),
		report.OrderCount,
		report.ItemCount,
		report.Revenue,
		report.ByMethod[model.PaymentPix],
		report.ByMethod[model.PaymentCard],
	)

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("error sending report: %w", err)
	}

	png, err := b.charts.GenerateRevenueChart(report)
	if err != nil {
		return fmt.Errorf("error generating revenue chart: %w", err)
	}
	if png == nil {
		return nil
	}

	photo := tgbotapi.NewPhoto(message.Chat.ID, tgbotapi.FileBytes{
		Name:  "faturamento.png",
		Bytes: png,
	})
	if _, err := b.api.Send(photo); err != nil {
		return fmt.Errorf("error sending revenue chart: %w", err)
	}
	return nil
}

func (b *Bot) sendErrorMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, "❌ "+text)
	b.api.Send(msg)
}
