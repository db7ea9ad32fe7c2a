package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dealersurvey/internal/model"
	"dealersurvey/internal/repository"
)

// The score tables are tuned so that the best possible total for every
// product is exactly model.MaxScore. Changing them means re-checking that
// sum by hand; nothing enforces it.
func catalog() []model.Question {
	return []model.Question{
		{
			Position: 0,
			Prompt:   "Как долго вы планируете владеть этим автомобилем?",
			Options:  []string{"Меньше года", "1–3 года", "Больше 3 лет"},
			Scores: map[string][]int{
				"Автодруг":             {1, 1, 1},
				"Независимая Гарантия": {0, 1, 3},
				"ПитСтоп":              {0, 1, 1},
				"CAR GARANT":           {0, 1, 2},
			},
		},
		{
			Position: 1,
			Prompt:   "Автомобиль новый или с пробегом?",
			Options:  []string{"Новый", "С пробегом"},
			Scores: map[string][]int{
				"Автодруг":             {1, 1},
				"Независимая Гарантия": {1, 3},
				"ПитСтоп":              {1, 2},
				"CAR GARANT":           {2, 1},
			},
		},
		{
			Position: 2,
			Prompt:   "Как часто вы совершаете дальние поездки?",
			Options:  []string{"Каждую неделю", "Несколько раз в год", "Практически никогда"},
			Scores: map[string][]int{
				"Автодруг":             {3, 2, 0},
				"Независимая Гарантия": {1, 0, 0},
				"ПитСтоп":              {1, 1, 0},
				"CAR GARANT":           {1, 1, 0},
			},
		},
		{
			Position: 3,
			Prompt:   "Планируете ли вы обслуживать автомобиль у официального дилера?",
			Options:  []string{"Да, только у дилера", "Частично", "Нет"},
			Scores: map[string][]int{
				"Автодруг":             {1, 1, 0},
				"Независимая Гарантия": {1, 0, 0},
				"ПитСтоп":              {3, 1, 0},
				"CAR GARANT":           {2, 1, 0},
			},
		},
		{
			Position: 4,
			Prompt:   "Насколько для вас важна фиксированная стоимость ремонта?",
			Options:  []string{"Очень важна", "Скорее важна", "Не важна"},
			Scores: map[string][]int{
				"Автодруг":             {1, 0, 0},
				"Независимая Гарантия": {1, 1, 0},
				"ПитСтоп":              {2, 1, 0},
				"CAR GARANT":           {2, 1, 0},
			},
		},
		{
			Position: 5,
			Prompt:   "Есть ли у вас помощь на дороге (эвакуатор, запуск двигателя)?",
			Options:  []string{"Нет", "Да, в составе КАСКО", "Да, отдельная услуга"},
			Scores: map[string][]int{
				"Автодруг": {2, 1, 0},
			},
		},
	}
}

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database("dealersurvey")
	repo := repository.NewCatalogRepo(db)

	questions := catalog()
	for i := range questions {
		questions[i].ID = primitive.NewObjectID().Hex()
	}

	if err := repo.Replace(ctx, questions); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	log.Printf("Seeded %d questions for %d products (max score %d)", len(questions), len(model.Products), model.MaxScore)
}
