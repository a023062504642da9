// Seeds the records the API only ever reads: the admin credential, mission
// descriptions and media URLs. The admin password is bcrypt-hashed here;
// plaintext never reaches the store.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"ministry_backend/internals/configs"
	database "ministry_backend/internals/databases"
	adminModel "ministry_backend/internals/features/admin/model"
	mediaModel "ministry_backend/internals/features/media/model"
	missionModel "ministry_backend/internals/features/missions/model"
)

func main() {
	withSamples := flag.Bool("samples", false, "also insert sample media and mission records")
	flag.Parse()

	configs.LoadEnv()
	database.ConnectDB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer database.DisconnectDB(ctx)

	seedAdmin(ctx, database.DB)
	if *withSamples {
		seedSamples(ctx, database.DB)
	}
}

func seedAdmin(ctx context.Context, db *mongo.Database) {
	username := configs.GetEnv("ADMIN_USERNAME")
	password := configs.GetEnv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("⚠️ ADMIN_USERNAME / ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash admin password: %v", err)
	}

	coll := db.Collection(adminModel.AdminModel{}.CollectionName())
	_, err = coll.UpdateOne(ctx,
		bson.M{"userName": username},
		bson.M{"$set": bson.M{"userName": username, "passWord": string(hash)}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Fatalf("❌ Failed to seed admin credential: %v", err)
	}
	log.Printf("✅ Admin credential seeded for %q", username)
}

func seedSamples(ctx context.Context, db *mongo.Database) {
	missions := db.Collection(missionModel.MissionDescriptionModel{}.CollectionName())
	images := db.Collection(mediaModel.PastorImageModel{}.CollectionName())
	videos := db.Collection(mediaModel.PastorVideoModel{}.CollectionName())

	if n, err := missions.CountDocuments(ctx, bson.M{}); err == nil && n == 0 {
		_, err := missions.InsertMany(ctx, []interface{}{
			missionModel.MissionDescriptionModel{
				Country: "kenya",
				Descriptions: missionModel.LocalizedText{
					En: "Our mission work in Kenya.",
					Fa: "ماموریت ما در کنیا.",
				},
			},
			missionModel.MissionDescriptionModel{
				Country: "armenia",
				Descriptions: missionModel.LocalizedText{
					En: "Our mission work in Armenia.",
				},
			},
		})
		if err != nil {
			log.Fatalf("❌ Failed to seed mission descriptions: %v", err)
		}
		log.Println("✅ Sample mission descriptions seeded")
	}

	if n, err := images.CountDocuments(ctx, bson.M{}); err == nil && n == 0 {
		_, err := images.InsertMany(ctx, []interface{}{
			mediaModel.PastorImageModel{
				Name: "kenya-outreach",
				URL:  "https://cdn.example.org/imgs/kenya-outreach.jpg",
				Country: mediaModel.LocalizedCountry{
					En: "Kenya",
					Fa: "کنیا",
				},
			},
		})
		if err != nil {
			log.Fatalf("❌ Failed to seed images: %v", err)
		}
		log.Println("✅ Sample images seeded")
	}

	if n, err := videos.CountDocuments(ctx, bson.M{}); err == nil && n == 0 {
		_, err := videos.InsertOne(ctx, mediaModel.PastorVideoModel{
			Name: "welcome",
			URL:  "https://cdn.example.org/videos/welcome.mp4",
		})
		if err != nil {
			log.Fatalf("❌ Failed to seed video: %v", err)
		}
		log.Println("✅ Sample video seeded")
	}
}
