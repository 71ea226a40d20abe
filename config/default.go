package config

// DefaultConfigYAML 内置默认配置
// 外部 config.yaml 或 LEDGER_ 前缀的环境变量可覆盖任意字段
var DefaultConfigYAML = []byte(`server:
  port: ":8080"
  mode: "release"

database:
  driver: "sqlite"
  path: "./data/ledger.db"
  # driver 为 mysql 时使用以下连接参数
  host: "127.0.0.1"
  port: "3306"
  username: "ledger"
  password: ""
  dbname: "ledger"
  charset: "utf8mb4"
`)
