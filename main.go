// @title MDSML 学习网关 API
// @version 1.0
// @description 分层课程进度、学习笔记与研究文献库的网关服务，认证与判题代理到上游学习平台。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"mdsml_gateway/internal/app"
	"mdsml_gateway/internal/config"
	"mdsml_gateway/pkg/configwatcher"
	"mdsml_gateway/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件目录")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig(*configDir+"/config.yaml", application.ReloadConfig)

	application.Run()
}
