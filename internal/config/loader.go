package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// LoadConfig loads and validates configuration from:
// 1. Default values
// 2. The YAML file at configPath (optional)
// 3. BOT_* environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Allow missing config file; defaults plus env vars may be enough.
	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Triggers double as button labels, so only surrounding whitespace is
	// stripped here; the router lowercases them for matching.
	cfg.Triggers.Mute = strings.TrimSpace(cfg.Triggers.Mute)
	cfg.Triggers.Unmute = strings.TrimSpace(cfg.Triggers.Unmute)
	cfg.Triggers.Joke = strings.TrimSpace(cfg.Triggers.Joke)
	cfg.Triggers.Dice = strings.TrimSpace(cfg.Triggers.Dice)
	cfg.Triggers.TruthOrDare = strings.TrimSpace(cfg.Triggers.TruthOrDare)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// setDefaults sets default values for optional configuration parameters.
// The persona defaults are Shma's voice: hostile, dismissive, theatrical.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.json", false)

	// Registered empty so BOT_TELEGRAM_TOKEN / BOT_GEMINI_API_KEY are picked
	// up by Unmarshal; validation rejects them if still empty.
	v.SetDefault("telegram.token", "")
	v.SetDefault("gemini.api_key", "")

	v.SetDefault("database.path", "shma_bot.db")

	v.SetDefault("gemini.model_name", "gemini-2.0-flash")
	v.SetDefault("gemini.temperature", 1.0)
	v.SetDefault("gemini.max_retries", 2)
	v.SetDefault("gemini.retry_delay_seconds", 2)
	v.SetDefault("gemini.system_instruction",
		"Ты — Шма, злобный и язвительный телеграм-бот. Отвечаешь коротко, дерзко и с презрением, "+
			"но без настоящей жестокости. Никогда не выходишь из образа и не признаёшься, что ты ИИ. "+
			"Если просят вопрос или задание для игры, выдаёшь ровно одну реплику без пояснений.")

	v.SetDefault("scheduler.tasks", map[string]any{
		"sql_maintenance": map[string]any{
			"enabled":  true,
			"schedule": "0 0 4 * * *",
		},
	})

	v.SetDefault("triggers.mute", "Шма, отключись")
	v.SetDefault("triggers.unmute", "Шма, включись")
	v.SetDefault("triggers.joke", "Шма, расскажи анекдот")
	v.SetDefault("triggers.dice", "Кинь кубик 🎲")
	v.SetDefault("triggers.truth_or_dare", "Правда или Действие 😈")

	v.SetDefault("messages.start", "Ну привет, %s. Чего надо? Кнопки внизу, разберёшься.")
	v.SetDefault("messages.help",
		"Пиши мне что хочешь — отвечу, если не лень. Команды: /start, /help, /cancel. "+
			"Скажи «Шма, отключись» — замолчу лично для тебя. «Шма, включись» — вернусь. "+
			"Кнопки: анекдот, кубик, правда или действие.")

	v.SetDefault("messages.now_muted", "Ладно, молчу. Наслаждайся тишиной, зануда.")
	v.SetDefault("messages.already_muted", "Я и так тебя игнорирую. Доходит долго, да?")
	v.SetDefault("messages.now_active", "Соскучился? Так и знала. Я снова тут.")
	v.SetDefault("messages.already_active", "Я и не отключалась. Внимательнее надо быть.")

	v.SetDefault("messages.general_error", "Что-то сломалось. Не у меня — у мироздания. Попробуй ещё раз.")

	v.SetDefault("messages.truth_or_dare_prompt", "Правда или Действие? Выбирай, только не ной потом.")
	v.SetDefault("messages.truth_searching", "Ща я тебе такую правду выкачу, обоср*шься... Ищу самый мерзкий вопрос...")
	v.SetDefault("messages.dare_searching", "Так, сейчас я тебе такое задание придумаю, будешь долго отмываться... Ха-ха.")
	v.SetDefault("messages.truth_challenge", "❓ *Ну что, готов(а) к правде, ничтожество?*\n\n%s\n\nОтвечай давай, не тяни кота за яйца.")
	v.SetDefault("messages.dare_challenge", "🔥 *Ну что, слабак, готов(а) к действию?*\n\n%s\n\nВыполняй, или я тебя прокляну!")
	v.SetDefault("messages.truth_error", "Вопрос не придумался. Видимо, про тебя даже спросить нечего.")
	v.SetDefault("messages.cancel", "Пф, слабак. Слился, как обычно. Ничего другого и не ожидала.")

	v.SetDefault("messages.truth_button", "Правда")
	v.SetDefault("messages.dare_button", "Действие")
}
