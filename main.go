package main

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prologistix/backend/cmd"
	"github.com/prologistix/backend/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

//go:embed templates/static
//go:embed templates/login.html
//go:embed templates/admin.html
//go:embed templates/404.html
var templates embed.FS

var (
	Version   = "?"
	BuildTime = "?"
	GitCommit = "-"
	GitRef    = "-"
)

func main() {
	//version info
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("prologistix %s, built %s from %s (%s)", Version, BuildTime, GitCommit, GitRef)
		return
	}
	logger := bootstrap()
	defer func() {
		_ = logger.Sync()
	}()
	cmd.TopLevelLogger = logger
	cmd.Execute()
}

func bootstrap() *zap.Logger {
	if _, err := os.Stat(".env"); err == nil {
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	}
	cfg := zap.NewProductionConfig()
	if r := os.Getenv("DEBUG_LOG"); r == "true" {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		log.Fatal(err)
	}
	cobra.OnInitialize(func() { initConfig(logger) })
	return logger
}

func setDefaults() {
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.address", "")
	viper.SetDefault("server.secure-cookies", false)
	viper.SetDefault("server.load-template-folder", false)
	viper.SetDefault("database.type", "sqlite")
	viper.SetDefault("database.dsn", "database.db")
	viper.SetDefault("admin.session-ttl", "24h")
	viper.SetDefault("vtc.api-url", "https://api.truckersmp.com/v2")
}

func initConfig(logger *zap.Logger) {
	bind := func(from string, to string) {
		err := viper.BindEnv(to, from)
		if err != nil {
			logger.Error("unable to bindenv", zap.String("from", from), zap.String(to, to), zap.Error(err))
		}
	}
	setDefaults()
	bind("PORT", "server.port")
	bind("ADDRESS", "server.address")

	bind("PLX_PORT", "server.port")
	bind("PLX_ADDRESS", "server.address")

	bind("PLX_SERVER_CSRF_TOKEN", "server.csrf-token")
	bind("PLX_SERVER_SECURE_COOKIES", "server.secure-cookies")
	bind("PLX_SERVER_LOAD_TEMPLATE_FOLDER", "server.load-template-folder")

	bind("PLX_DATABASE_TYPE", "database.type")
	bind("PLX_DATABASE_DSN", "database.dsn")

	bind("PLX_ADMIN_USERNAME", "admin.username")
	bind("PLX_ADMIN_PASSWORD_HASH", "admin.password-hash")
	bind("PLX_ADMIN_SESSION_SECRET", "admin.session-secret")
	bind("PLX_ADMIN_SESSION_TTL", "admin.session-ttl")

	bind("PLX_VTC_ID", "vtc.id")
	bind("PLX_VTC_API_URL", "vtc.api-url")

	bind("PLX_DISCORD_TOKEN", "discord.token")
	bind("PLX_DISCORD_APP_ID", "discord.app-id")
	bind("PLX_DISCORD_GUILD_ID", "discord.guild-id")

	if cmd.ConfigFileLocation != "" {
		logger.Debug("Using supplied config file", zap.String("file", string(cmd.ConfigFileLocation)))
		viper.SetConfigFile(string(cmd.ConfigFileLocation))
	} else {
		path, err := os.Getwd()
		if err != nil {
			logger.Warn("Unable to get current working dir", zap.Error(err))
		}
		cobra.CheckErr(err)
		viper.AddConfigPath(path)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		logger.Debug("Looking for default config file")
	}
	//precedence: environment overwrites yml
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Debug("No config file loaded")
	} else {
		logger.Debug("Config file loaded", zap.String("file", viper.ConfigFileUsed()))
	}

	conf := &config.Configuration{}
	err := viper.Unmarshal(conf)
	if err != nil {
		logger.Fatal("Unable to unmarshall config", zap.Error(err))
	}
	// validation happens per command, `hash` must work before a
	// complete configuration exists
	cmd.LoadedConfig = conf

	if cmd.LoadedConfig.Server.LoadTemplateFolder {
		if _, err := os.Stat("templates"); os.IsNotExist(err) {
			logger.Fatal("You need to add the templates folder when using `server.load-template-folder:true`")
		}
		folder := os.DirFS("templates")
		statics, err := fs.Sub(folder, "static")
		if err != nil {
			logger.Fatal("Unable to open templates/static folder")
		}
		cmd.FileSystemsConfig = &config.FileSystems{
			StaticFolder: statics,
			Templates:    folder,
		}
	} else {
		sub, err := fs.Sub(templates, "templates")
		if err != nil {
			logger.Fatal("Unable to open embedded templates folder")
		}
		statics, err := fs.Sub(sub, "static")
		if err != nil {
			logger.Fatal("Unable to open templates/static folder")
		}
		cmd.FileSystemsConfig = &config.FileSystems{
			StaticFolder: statics,
			Templates:    sub,
		}
	}
}
