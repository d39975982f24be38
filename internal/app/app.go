package app

import (
	"github.com/carousell/ct-go/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/Adityakumarsinghstm/ChatBot/internal/catalog"
	"github.com/Adityakumarsinghstm/ChatBot/internal/config"
	"github.com/Adityakumarsinghstm/ChatBot/internal/server"
	"github.com/Adityakumarsinghstm/ChatBot/internal/usecase"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded", log.Reflect("config", conf))
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newGenkitClient,
			newCatalogClient,
			newPromptBuilder,
			newLLMEngine,

			server.NewHandler,

			usecase.NewChatUsecase,

			catalog.NewCache,
		),
		fx.Supply(conf),
		fx.Invoke(funcs...),
	)
}
