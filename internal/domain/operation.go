package domain

// SlotOperation - закрытое множество операций над слотами команды.
// Вместо строкового поля "operation" в произвольном JSON каждая операция
// представлена своим типом и диспетчеризуется исчерпывающим type switch.
type SlotOperation interface {
	isSlotOperation()
}

// AssignLeaderOp назначает нового лидера (смена лидера - это всегда переход,
// в том числе переход "сам в себя")
type AssignLeaderOp struct {
	UserID string
}

// RemoveLeaderOp освобождает слот лидера
type RemoveLeaderOp struct{}

// AddMemberOp добавляет участника в новый слот
type AddMemberOp struct {
	UserID string
}

// RemoveMemberOp освобождает слот, занятый пользователем
type RemoveMemberOp struct {
	UserID string
}

func (AssignLeaderOp) isSlotOperation() {}
func (RemoveLeaderOp) isSlotOperation() {}
func (AddMemberOp) isSlotOperation()    {}
func (RemoveMemberOp) isSlotOperation() {}
