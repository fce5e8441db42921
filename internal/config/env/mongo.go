package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type mongoEnv struct {
	Host     string `env:"MONGO_HOST,required"`
	Port     int    `env:"MONGO_PORT,required"`
	User     string `env:"MONGO_INITDB_ROOT_USERNAME,required"`
	Password string `env:"MONGO_INITDB_ROOT_PASSWORD,required"`
	DBName   string `env:"MONGO_DATABASE,required"`
	AuthDB   string `env:"MONGO_AUTH_DB" envDefault:"admin"`

	PartsCollection          string `env:"MONGO_PARTS_COLLECTION" envDefault:"parts"`
	SuppliersCollection      string `env:"MONGO_SUPPLIERS_COLLECTION" envDefault:"suppliers"`
	PurchaseOrdersCollection string `env:"MONGO_PURCHASE_ORDERS_COLLECTION" envDefault:"purchase_orders"`
	QuotationsCollection     string `env:"MONGO_QUOTATIONS_COLLECTION" envDefault:"quotations"`
	AppointmentsCollection   string `env:"MONGO_APPOINTMENTS_COLLECTION" envDefault:"appointments"`
}

type mongo struct {
	raw mongoEnv
}

func NewMongoConfig() (*mongo, error) {
	var raw mongoEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &mongo{raw: raw}, nil
}

func (cfg *mongo) DatabaseName() string { return cfg.raw.DBName }

func (cfg *mongo) PartsCollection() string          { return cfg.raw.PartsCollection }
func (cfg *mongo) SuppliersCollection() string      { return cfg.raw.SuppliersCollection }
func (cfg *mongo) PurchaseOrdersCollection() string { return cfg.raw.PurchaseOrdersCollection }
func (cfg *mongo) QuotationsCollection() string     { return cfg.raw.QuotationsCollection }
func (cfg *mongo) AppointmentsCollection() string   { return cfg.raw.AppointmentsCollection }

func (cfg *mongo) DSN() string {
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%d/%s?authSource=%s",
		cfg.raw.User,
		cfg.raw.Password,
		cfg.raw.Host,
		cfg.raw.Port,
		cfg.raw.DBName,
		cfg.raw.AuthDB,
	)
}
