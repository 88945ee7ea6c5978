package model

// Stage representa a etapa atual da conversa de um usuário
type Stage int

const (
	StageInitial Stage = iota
	StageGreeted
	StageChoosingCategory
	StageViewingCart
	StageAwaitingPayment
)

// String devolve o nome da etapa para os logs
func (s Stage) String() string {
	switch s {
	case StageInitial:
		return "initial"
	case StageGreeted:
		return "greeted"
	case StageChoosingCategory:
		return "choosing_category"
	case StageViewingCart:
		return "viewing_cart"
	case StageAwaitingPayment:
		return "awaiting_payment"
	default:
		return "unknown"
	}
}

// UserState representa o estado atual da conversa de um usuário.
// Category só tem significado na etapa StageChoosingCategory.
type UserState struct {
	Stage    Stage    `json:"stage"`
	Category Category `json:"category,omitempty"`
}
