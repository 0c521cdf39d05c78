package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"roomie_feed/config"
	"roomie_feed/controllers"
	"roomie_feed/models"
	"roomie_feed/services"
)

func main() {
	categoryFlag := flag.String("category", "All", "feed category: All, Male, Female or Non-Binary")
	force := flag.Bool("force", false, "bypass the feed cache")
	swipeFlag := flag.String("swipe", "", "swipe left or right on the first candidate")
	flag.Parse()

	cfg := config.Load()
	if cfg.FeedUserID == "" || cfg.FeedAuthToken == "" {
		log.Fatal("FEED_USER_ID and FEED_AUTH_TOKEN are required")
	}

	category, err := models.ParseCategory(*categoryFlag)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	feed := controllers.NewProfileFeedController(buildFeedConfig(ctx, cfg))

	queue, err := feed.Refresh(ctx, category, *force)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if feed.IsExhausted(category) {
		fmt.Printf("No more %s candidates.\n", category)
		return
	}

	for i, c := range queue {
		picture, err := feed.PictureURL(ctx, c)
		if err != nil {
			log.Printf("⚠️ %v", err)
		}
		fmt.Printf("%2d. %-12s %-20s %3d %-10s %s\n", i+1, c.ID, c.Name, c.Age, c.Gender, picture)
	}

	if *swipeFlag != "" && len(queue) > 0 {
		direction, err := models.ParseSwipeDirection(*swipeFlag)
		if err != nil {
			log.Fatal(err)
		}
		feed.RecordSwipe(category, queue[0].ID, direction)
		left := feed.GetActiveQueue(category)
		// also waits for the refresh a drained queue starts
		feed.Wait()
		fmt.Printf("Swiped %s on %s, %d left in queue.\n", direction, queue[0].ID, len(left))
	}
}

func buildFeedConfig(ctx context.Context, cfg *config.Config) controllers.FeedConfig {
	api := services.NewAPIClient(cfg.APIBaseURL)
	directory := services.NewDirectoryClient(api)
	directory.Timeout = cfg.FeedTimeout
	swipes := services.NewSwipeClient(api)
	swipes.Timeout = cfg.FeedTimeout

	feedCfg := controllers.FeedConfig{
		Session:   models.Session{UserID: cfg.FeedUserID, Token: cfg.FeedAuthToken},
		Directory: directory,
		Swipes:    swipes,
		Reporter:  services.LogFailureReporter{},
		TTL:       cfg.FeedTTL,
		Timeout:   cfg.FeedTimeout,
	}

	if !cfg.AWSEnabled() {
		return feedCfg
	}
	awsCfg, err := services.LoadAWSConfig(ctx, cfg.AWSRegion)
	if err != nil {
		log.Printf("⚠️ AWS disabled: %v", err)
		return feedCfg
	}
	if cfg.SwipeFailuresTable != "" {
		dynamo := &services.DynamoService{Client: services.InitializeDynamoDBClient(awsCfg)}
		feedCfg.Reporter = services.FanoutReporter{
			services.LogFailureReporter{},
			services.NewDynamoFailureReporter(dynamo, cfg.SwipeFailuresTable),
		}
	}
	if cfg.S3Bucket != "" {
		feedCfg.Pictures = services.NewPictureSigner(awsCfg, cfg.S3Bucket)
	}
	return feedCfg
}
