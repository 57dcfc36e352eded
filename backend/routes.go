package backend

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/pydis/site-api/backend/handlers"
	"github.com/pydis/site-api/backend/middleware"
	"github.com/pydis/site-api/siteapi/database/models"
	"github.com/pydis/site-api/siteapi/serializers"
)

// NewApp builds the API application around webApp's repositories.
func NewApp(webApp *handlers.WebApp) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Site API",
		ServerHeader: "SiteAPI",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.SecurityHeaders())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	allowOrigins := "*"
	if webApp.Config != nil && webApp.Config.Web.AllowOrigins != "" {
		allowOrigins = webApp.Config.Web.AllowOrigins
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(middleware.LoggingMiddleware())

	setupRoutes(app, webApp)
	return app
}

func setupRoutes(app *fiber.App, webApp *handlers.WebApp) {
	repos := webApp.Repos

	app.Get("/health", handlers.HealthCheck(webApp))

	bot := app.Group("/bot")

	(&handlers.Resource[models.BotSetting, string]{
		Name:       "bot setting",
		Serializer: serializers.NewBotSettingSerializer(repos.BotSettings),
		Store:      repos.BotSettings,
		ParseKey:   handlers.StringKey,
		Preserve:   func(existing, updated *models.BotSetting) { updated.Name = existing.Name },
	}).Register(bot, "/bot-settings", handlers.OpAll)

	(&handlers.Resource[models.DocumentationLink, string]{
		Name:       "documentation link",
		Serializer: serializers.NewDocumentationLinkSerializer(repos.DocumentationLinks),
		Store:      repos.DocumentationLinks,
		ParseKey:   handlers.StringKey,
		Preserve:   func(existing, updated *models.DocumentationLink) { updated.Package = existing.Package },
	}).Register(bot, "/documentation-links", handlers.OpAll)

	(&handlers.Resource[models.Role, int64]{
		Name:       "role",
		Serializer: serializers.NewRoleSerializer(repos.Roles),
		Store:      repos.Roles,
		ParseKey:   handlers.Int64Key,
		Preserve:   func(existing, updated *models.Role) { updated.ID = existing.ID },
	}).Register(bot, "/roles", handlers.OpAll)

	users := serializers.NewUserSerializer(repos.Roles, repos.Users)
	bot.Post("/users", handlers.CreateUsers(users))
	(&handlers.Resource[models.User, int64]{
		Name:       "user",
		Serializer: users,
		Store:      repos.Users,
		ParseKey:   handlers.Int64Key,
		Preserve:   func(existing, updated *models.User) { updated.ID = existing.ID },
		Filters:    map[string]handlers.Filter{"in_guild": handlers.BoolFilter("in_guild")},
	}).Register(bot, "/users", handlers.OpAll&^handlers.OpCreate)

	infractions := serializers.NewInfractionSerializer(repos.Users, repos.Infractions)
	infractionFilters := map[string]handlers.Filter{
		"user__id":  handlers.IntFilter("user_id"),
		"actor__id": handlers.IntFilter("actor_id"),
		"type":      handlers.StringFilter("type"),
		"active":    handlers.BoolFilter("active"),
		"hidden":    handlers.BoolFilter("hidden"),
	}
	preserveInfraction := func(existing, updated *models.Infraction) { updated.ID = existing.ID }

	// Expanded routes go first so "/expanded" is not taken for a key. Their
	// representation nests users, so updates are laid over the plain one.
	expanded := &handlers.Resource[models.Infraction, int64]{
		Name:       "infraction",
		Serializer: serializers.NewExpandedInfractionSerializer(infractions, repos.Users),
		Base:       infractions,
		Store:      repos.Infractions,
		ParseKey:   handlers.Int64Key,
		Preserve:   preserveInfraction,
		Filters:    infractionFilters,
	}
	bot.Get("/infractions/expanded", expanded.List())
	bot.Post("/infractions/expanded", expanded.Create())
	bot.Get("/infractions/:key/expanded", expanded.Retrieve())
	bot.Put("/infractions/:key/expanded", expanded.Update(false))
	bot.Patch("/infractions/:key/expanded", expanded.Update(true))

	(&handlers.Resource[models.Infraction, int64]{
		Name:       "infraction",
		Serializer: infractions,
		Store:      repos.Infractions,
		ParseKey:   handlers.Int64Key,
		Preserve:   preserveInfraction,
		Filters:    infractionFilters,
	}).Register(bot, "/infractions", handlers.OpAll)

	(&handlers.Resource[models.Nomination, int64]{
		Name:       "nomination",
		Serializer: serializers.NewNominationSerializer(repos.Users, repos.Nominations),
		Store:      repos.Nominations,
		ParseKey:   handlers.Int64Key,
		Preserve: func(existing, updated *models.Nomination) {
			updated.ID = existing.ID
			updated.InsertedAt = existing.InsertedAt
		},
		Filters: map[string]handlers.Filter{
			"user__id":  handlers.IntFilter("user_id"),
			"actor__id": handlers.IntFilter("actor_id"),
			"active":    handlers.BoolFilter("active"),
		},
	}).Register(bot, "/nominations", handlers.OpAll&^handlers.OpDelete)

	(&handlers.Resource[models.Reminder, int64]{
		Name:       "reminder",
		Serializer: serializers.NewReminderSerializer(repos.Users, repos.Reminders),
		Store:      repos.Reminders,
		ParseKey:   handlers.Int64Key,
		Preserve:   func(existing, updated *models.Reminder) { updated.ID = existing.ID },
		Filters: map[string]handlers.Filter{
			"author__id": handlers.IntFilter("author_id"),
			"active":     handlers.BoolFilter("active"),
		},
	}).Register(bot, "/reminders", handlers.OpAll)

	(&handlers.Resource[models.Tag, string]{
		Name:       "tag",
		Serializer: serializers.NewTagSerializer(repos.Tags),
		Store:      repos.Tags,
		ParseKey:   handlers.StringKey,
		Preserve:   func(existing, updated *models.Tag) { updated.Title = existing.Title },
	}).Register(bot, "/tags", handlers.OpAll)

	(&handlers.Resource[models.OffTopicChannelName, string]{
		Name:       "off topic channel name",
		Serializer: serializers.NewOffTopicChannelNameSerializer(repos.OffTopicChannelNames),
		Store:      repos.OffTopicChannelNames,
		ParseKey:   handlers.StringKey,
	}).Register(bot, "/off-topic-channel-names", handlers.OpAll&^handlers.OpUpdate)

	(&handlers.Resource[models.SnakeFact, string]{
		Name:       "snake fact",
		Serializer: serializers.NewSnakeFactSerializer(repos.SnakeFacts),
		Store:      repos.SnakeFacts,
		ParseKey:   handlers.StringKey,
	}).Register(bot, "/snake-facts", handlers.OpReadOnly|handlers.OpCreate)

	(&handlers.Resource[models.SnakeIdiom, string]{
		Name:       "snake idiom",
		Serializer: serializers.NewSnakeIdiomSerializer(repos.SnakeIdioms),
		Store:      repos.SnakeIdioms,
		ParseKey:   handlers.StringKey,
	}).Register(bot, "/snake-idioms", handlers.OpReadOnly|handlers.OpCreate)

	(&handlers.Resource[models.SnakeName, string]{
		Name:       "snake name",
		Serializer: serializers.NewSnakeNameSerializer(repos.SnakeNames),
		Store:      repos.SnakeNames,
		ParseKey:   handlers.StringKey,
	}).Register(bot, "/snake-names", handlers.OpReadOnly|handlers.OpCreate)

	(&handlers.Resource[models.SpecialSnake, string]{
		Name:       "special snake",
		Serializer: serializers.NewSpecialSnakeSerializer(repos.SpecialSnakes),
		Store:      repos.SpecialSnakes,
		ParseKey:   handlers.StringKey,
	}).Register(bot, "/special-snakes", handlers.OpReadOnly|handlers.OpCreate)

	(&handlers.Resource[models.LogEntry, int64]{
		Name:       "log entry",
		Serializer: serializers.NewLogEntrySerializer(repos.LogEntries),
		Store:      repos.LogEntries,
		ParseKey:   handlers.Int64Key,
		Filters: map[string]handlers.Filter{
			"application": handlers.StringFilter("application"),
			"level":       handlers.StringFilter("level"),
		},
	}).Register(bot, "/logs", handlers.OpReadOnly|handlers.OpCreate)

	deletedMessages := serializers.NewDeletedMessageSerializer(repos.Users, repos.DeletionContexts, repos.DeletedMessages)
	(&handlers.Resource[models.DeletedMessage, int64]{
		Name:       "deleted message",
		Serializer: deletedMessages,
		Store:      repos.DeletedMessages,
		ParseKey:   handlers.Int64Key,
		Filters: map[string]handlers.Filter{
			"deletion_context": handlers.IntFilter("deletion_context_id"),
			"author__id":       handlers.IntFilter("author_id"),
		},
	}).Register(bot, "/deleted-messages", handlers.OpReadOnly)

	(&handlers.Resource[models.MessageDeletionContext, int64]{
		Name:       "message deletion context",
		Serializer: serializers.NewMessageDeletionContextSerializer(repos.Users, deletedMessages, repos.DeletionContexts),
		Store:      repos.DeletionContexts,
		ParseKey:   handlers.Int64Key,
		Fetch:      repos.DeletionContexts.GetWithMessages,
	}).Register(bot, "/message-deletion-contexts", handlers.OpReadOnly|handlers.OpCreate)

	(&handlers.Resource[models.FilterList, int64]{
		Name:       "filter list",
		Serializer: serializers.NewFilterListSerializer(repos.FilterLists),
		Store:      repos.FilterLists,
		ParseKey:   handlers.Int64Key,
		Preserve:   func(existing, updated *models.FilterList) { updated.ID = existing.ID },
		Filters: map[string]handlers.Filter{
			"name":      handlers.StringFilter("name"),
			"list_type": handlers.IntFilter("list_type"),
		},
	}).Register(bot, "/filter-lists", handlers.OpAll)

	(&handlers.Resource[models.Filter, int64]{
		Name:       "filter",
		Serializer: serializers.NewFilterSerializer(repos.FilterLists, repos.Filters),
		Store:      repos.Filters,
		ParseKey:   handlers.Int64Key,
		Preserve:   func(existing, updated *models.Filter) { updated.ID = existing.ID },
		Filters:    map[string]handlers.Filter{"filter_list": handlers.IntFilter("filter_list_id")},
	}).Register(bot, "/filters", handlers.OpAll)
}
