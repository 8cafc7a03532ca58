package database

import (
	"encoding/json"
	"fmt"
	"log"
	"mdsml_gateway/internal/config"
	"mdsml_gateway/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Note{},
		&model.Paper{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 内置文献：论文表为空时填入默认条目
	var count int64
	db.Model(&model.Paper{}).Count(&count)
	if count == 0 {
		for _, p := range seedPapers() {
			db.Create(&p)
		}
	}

	return db, nil
}

func seedPapers() []model.Paper {
	tags := func(ts ...string) json.RawMessage {
		b, _ := json.Marshal(ts)
		return b
	}
	return []model.Paper{
		{
			ID:       "attention-is-all-you-need",
			Title:    "Attention Is All You Need",
			Authors:  "Vaswani et al.",
			Year:     2017,
			Tags:     tags("Transformer", "NLP"),
			Abstract: "The dominant sequence transduction models are based on complex recurrent or convolutional neural networks...",
		},
		{
			ID:       "lora",
			Title:    "LoRA: Low-Rank Adaptation of Large Language Models",
			Authors:  "Hu et al.",
			Year:     2021,
			Tags:     tags("Fine-tuning", "LLM"),
			Abstract: "We propose Low-Rank Adaptation, or LoRA, which freezes the pre-trained model weights...",
		},
		{
			ID:       "proximal-policy-optimization",
			Title:    "Proximal Policy Optimization Algorithms",
			Authors:  "Schulman et al.",
			Year:     2017,
			Tags:     tags("RL", "Optimization"),
			Abstract: "We propose a new family of policy gradient methods for reinforcement learning...",
		},
	}
}
