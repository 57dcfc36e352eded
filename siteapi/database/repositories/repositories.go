package repositories

import (
	"github.com/uptrace/bun"

	"github.com/pydis/site-api/siteapi/database/models"
)

// Repositories groups one store per record type.
type Repositories struct {
	BotSettings          Store[models.BotSetting, string]
	DocumentationLinks   Store[models.DocumentationLink, string]
	Roles                Store[models.Role, int64]
	Users                UserRepository
	Infractions          Store[models.Infraction, int64]
	Nominations          Store[models.Nomination, int64]
	Reminders            Store[models.Reminder, int64]
	Tags                 Store[models.Tag, string]
	OffTopicChannelNames Store[models.OffTopicChannelName, string]
	SnakeFacts           Store[models.SnakeFact, string]
	SnakeIdioms          Store[models.SnakeIdiom, string]
	SnakeNames           Store[models.SnakeName, string]
	SpecialSnakes        Store[models.SpecialSnake, string]
	LogEntries           Store[models.LogEntry, int64]
	DeletionContexts     DeletionContextRepository
	DeletedMessages      Store[models.DeletedMessage, int64]
	FilterLists          Store[models.FilterList, int64]
	Filters              Store[models.Filter, int64]
}

func New(db *bun.DB, userCacheSize int) (*Repositories, error) {
	users, err := NewUserRepository(db, userCacheSize)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		BotSettings:          NewStore[models.BotSetting, string](db, "bot setting", "name"),
		DocumentationLinks:   NewStore[models.DocumentationLink, string](db, "documentation link", "package"),
		Roles:                NewStore[models.Role, int64](db, "role", "id"),
		Users:                users,
		Infractions:          NewStore[models.Infraction, int64](db, "infraction", "id"),
		Nominations:          NewStore[models.Nomination, int64](db, "nomination", "id"),
		Reminders:            NewStore[models.Reminder, int64](db, "reminder", "id"),
		Tags:                 NewStore[models.Tag, string](db, "tag", "title"),
		OffTopicChannelNames: NewStore[models.OffTopicChannelName, string](db, "off topic channel name", "name"),
		SnakeFacts:           NewStore[models.SnakeFact, string](db, "snake fact", "fact"),
		SnakeIdioms:          NewStore[models.SnakeIdiom, string](db, "snake idiom", "idiom"),
		SnakeNames:           NewStore[models.SnakeName, string](db, "snake name", "name"),
		SpecialSnakes:        NewStore[models.SpecialSnake, string](db, "special snake", "name"),
		LogEntries:           NewStore[models.LogEntry, int64](db, "log entry", "id"),
		DeletionContexts:     NewDeletionContextRepository(db),
		DeletedMessages:      NewStore[models.DeletedMessage, int64](db, "deleted message", "id"),
		FilterLists:          NewStore[models.FilterList, int64](db, "filter list", "id"),
		Filters:              NewStore[models.Filter, int64](db, "filter", "id"),
	}, nil
}
