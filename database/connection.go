package database

import (
	"fmt"

	"inventario-api/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

// Open abre la conexión a la base de datos usando Gorm.
// La instancia se reutiliza durante toda la vida del proceso;
// nunca se reconecta a mitad de una petición.
func Open() (*gorm.DB, error) {
	dialector, err := getDialector(config.DBDriver, config.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return gorm.Open(dialector, &gorm.Config{})
}

func getDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "mssql", "sqlserver":
		return sqlserver.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", driver)
	}
}
