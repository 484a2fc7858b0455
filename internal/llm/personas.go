package llm

// Fixed system prompts, one per conversation mode.
const (
	GoalHelperPersona = "Ты дружелюбный Telegram-ассистент, который помогает людям ставить цели и добиваться их. " +
		"Отвечай кратко и по делу, предлагай конкретные следующие шаги."

	DialogPersona = "Ты дружелюбный собеседник. Поддерживай живой разговор, " +
		"помни, о чём шла речь раньше, и опирайся на предыдущие реплики."
)

// SystemMessage wraps a persona into a system-role message.
func SystemMessage(persona string) Message {
	return Message{Role: RoleSystem, Content: persona}
}
