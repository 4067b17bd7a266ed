package gemini

// Prompt templates for the fixed persona call variants. The persona system
// instruction comes from config; these are the user-turn prompts.
const (
	JokePrompt  = "Расскажи анекдот."
	TruthPrompt = "Сыграем в Правду или Действие. Я выбираю Правду. Задай мне вопрос."
	DarePrompt  = "Сыграем в Правду или Действие. Я выбираю Действие. Придумай мне задание."
)

// Fallback strings, one set per call variant. Within a variant the three
// strings are pairwise distinct, and no string is shared between variants,
// so the user-visible text identifies both the call site and the failure
// class without leaking upstream error shapes.
const (
	ReplyBlockedMsg   = "Пф, даже отвечать на это не хочу. Скукота."
	ReplyEmptyMsg     = "Заткнись. Я не в настроении."
	ReplyTransportMsg = "Мои тёмные силы сегодня барахлят. Зайди позже, если осмелишься."

	JokeBlockedMsg   = "Анекдоты? Сегодня не в настроении смешить таких, как ты. Отвали."
	JokeEmptyMsg     = "Анекдот застрял у меня в горле. Как и ты."
	JokeTransportMsg = "Юмор временно недоступен. Как и твои шансы меня рассмешить."

	DareBlockedMsg   = "Такое задание тебе давать запрещено. Даже мне. Скажи спасибо."
	DareEmptyMsg     = "Не могу придумать ничего достаточно унизительного для тебя. Повезло."
	DareTransportMsg = "Задание потерялось где-то в преисподней. Сиди и бойся."
)
