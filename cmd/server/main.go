package main

import (
	"fmt"
	"log"

	"github.com/ChanieT/WannabeStackOverflow/config"
	"github.com/ChanieT/WannabeStackOverflow/internal/database"
	"github.com/ChanieT/WannabeStackOverflow/internal/model"
	"github.com/ChanieT/WannabeStackOverflow/internal/route"
)

func main() {
	// 1. 加载配置
	config.MustLoad("config.yaml")

	// 2. 初始化数据库
	database.InitDatabase()

	// 3. 迁移表结构
	if err := model.InitTable(database.GetDB()); err != nil {
		log.Fatalf("初始化数据库表失败: %v", err)
	}

	// 4. 设置路由
	r := route.SetupRouter()

	// 5. 启动服务
	r.Run(fmt.Sprintf(":%d", config.Conf.Server.Port))
}
