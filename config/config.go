package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

const defaultPrefix = "POS"

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s"   envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"30s"   envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s"    envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s"   envconfig:"IDLE_TIMEOUT"`
	// HandlerTimeout — таймаут печати в HTTP-обработчике (спулер может ответить не сразу).
	HandlerTimeout  time.Duration `default:"20s" envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout time.Duration `default:"5s"  envconfig:"GRACEFUL_TIMEOUT"`
}

type Tracing struct {
	Enabled     bool    `default:"false"              envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"pos-printer"        envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318"        envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1"                  envconfig:"OTEL_SAMPLE_RATIO"`
}

// Postgres — журнал печати. Пустой DSN отключает журнал.
type Postgres struct {
	DSN         string `default:""      envconfig:"DSN"`
	MaxConns    int32  `default:"10"    envconfig:"MAX_CONNS"`
	AutoMigrate bool   `default:"false" envconfig:"AUTO_MIGRATE"`
}

type Kafka struct {
	Enabled        bool          `default:"false"        envconfig:"ENABLED"`
	Brokers        []string      `default:"kafka:9092"   envconfig:"BROKERS"`
	Topic          string        `default:"print-orders" envconfig:"TOPIC"`
	GroupID        string        `default:"pos-printer"  envconfig:"GROUP_ID"`
	StartOffset    string        `default:"last"         envconfig:"START_OFFSET"`
	ProcessTimeout time.Duration `default:"30s"          envconfig:"PROCESS_TIMEOUT"`
	RetryInitial   time.Duration `default:"1s"           envconfig:"RETRY_INITIAL"`
	RetryMax       time.Duration `default:"30s"          envconfig:"RETRY_MAX"`
}

// Cache — снимки для перепечатки.
type Cache struct {
	Capacity int           `default:"500" envconfig:"CAPACITY"`
	TTL      time.Duration `default:"12h" envconfig:"TTL"`
	WarmUpN  int           `default:"100" envconfig:"WARMUP_N"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

// Printer — профиль принтера одной роли.
type Printer struct {
	DeviceType   string `default:"epson"      envconfig:"DEVICE_TYPE"`
	DeviceName   string `default:"POS-80"     envconfig:"DEVICE_NAME"`
	CharacterSet string `default:"PC858_EURO" envconfig:"CHARACTER_SET"`
	WidthColumns int    `default:"42"         envconfig:"WIDTH_COLUMNS"`
}

// Printers — по умолчанию обе роли печатают на одно устройство.
type Printers struct {
	Kitchen Printer `envconfig:"KITCHEN"`
	Cashier Printer `envconfig:"CASHIER"`
}

// Dispatch — способ доставки байтов: spool (lp) или device (запись в файл устройства).
type Dispatch struct {
	Mode          string   `default:"spool"                     envconfig:"MODE"`
	SpoolCommand  string   `default:"lp"                        envconfig:"SPOOL_COMMAND"`
	SpoolArgs     []string `default:"-d,{printer},-o,raw,{file}" envconfig:"SPOOL_ARGS"`
	SuccessMarker string   `default:"request id is"             envconfig:"SUCCESS_MARKER"`
	TempDir       string   `default:""                          envconfig:"TEMP_DIR"`
	DevicePath    string   `default:"/dev/usb/{printer}"        envconfig:"DEVICE_PATH"`
}

type Receipt struct {
	StoreName    string `default:"POS"              envconfig:"STORE_NAME"`
	Subtitle     string `default:"Sales Receipt"    envconfig:"SUBTITLE"`
	KitchenTitle string `default:"KITCHEN TICKET"   envconfig:"KITCHEN_TITLE"`
	Currency     string `default:"EUR"              envconfig:"CURRENCY"`
	TimeFormat   string `default:"02.01.2006 15:04" envconfig:"TIME_FORMAT"`
	// ThankYou — строки в конце кассового чека, через запятую.
	ThankYou []string `default:"Thank you for your visit!,See you soon!" envconfig:"THANK_YOU"`
	// Timezone — имя из базы IANA; пусто — локальная зона.
	Timezone string `default:"" envconfig:"TIMEZONE"`
}

type Config struct {
	HTTP     HTTP
	Tracing  Tracing
	Postgres Postgres
	Kafka    Kafka
	Cache    Cache
	Logger   Logger
	Printers Printers
	Dispatch Dispatch
	Receipt  Receipt
}

// Load — конфигурация из окружения с префиксом POS.
func Load() (Config, error) {
	return LoadWithPrefix(defaultPrefix)
}

func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}
