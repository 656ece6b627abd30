package repositories

import "github.com/maxaizer/career-bot/internal/domain/models"

func seedJobs() []models.JobPosting {
	return []models.JobPosting{
		{
			ID:           "1",
			Title:        "Senior Frontend Developer",
			Company:      "TechCorp Solutions",
			Location:     "Bangalore, India",
			Salary:       "25-35 LPA",
			Type:         models.FullTime,
			WorkLocation: models.Hybrid,
			Logo:         "https://images.unsplash.com/photo-1549923746-c502d488b3ea?w=100&h=100&fit=crop",
			PostedDate:   "2d ago",
		},
		{
			ID:           "2",
			Title:        "Machine Learning Engineer",
			Company:      "AI Innovations",
			Location:     "Mumbai, India",
			Salary:       "30-45 LPA",
			Type:         models.FullTime,
			WorkLocation: models.Remote,
			Logo:         "https://images.unsplash.com/photo-1639762681485-074b7f938ba0?w=100&h=100&fit=crop",
			PostedDate:   "5d ago",
		},
		{
			ID:           "3",
			Title:        "Product Design Intern",
			Company:      "Creative Studios",
			Location:     "Delhi, India",
			Salary:       "4-6 LPA",
			Type:         models.Internship,
			WorkLocation: models.OnSite,
			Logo:         "https://images.unsplash.com/photo-1572044162444-ad60f128bdea?w=100&h=100&fit=crop",
			PostedDate:   "1w ago",
		},
	}
}

func seedPosts() []models.Post {
	image := "https://images.unsplash.com/photo-1542744094-3a31f272c490?w=600&h=400&fit=crop"
	return []models.Post{
		{
			ID: "1",
			Author: models.Author{
				Name:   "Sarah Chen",
				Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=100&h=100&fit=crop",
				Role:   "Senior Product Designer",
			},
			Content: "Just completed a successful product launch! Here are some key learnings about " +
				"user research and iterative design that I want to share with the community...",
			Image:     &image,
			Likes:     234,
			Comments:  45,
			Shares:    12,
			Timestamp: "2h ago",
			IsLiked:   false,
		},
		{
			ID: "2",
			Author: models.Author{
				Name:   "Alex Kumar",
				Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop",
				Role:   "Software Engineer",
			},
			Content: "Excited to share that I've just transitioned from a non-tech background to a " +
				"software engineering role! Happy to help others making similar career changes.",
			Likes:     156,
			Comments:  32,
			Shares:    8,
			Timestamp: "4h ago",
			IsLiked:   true,
		},
	}
}

func seedNotificationHistory() []models.NotificationHistoryItem {
	return []models.NotificationHistoryItem{
		{
			ID:          "1",
			Title:       "New Job Match",
			Description: "Senior Frontend Developer position at TechCorp matches your profile",
			Timestamp:   "2h ago",
			Read:        false,
		},
		{
			ID:          "2",
			Title:       "Application Update",
			Description: "Your application for Product Designer at Creative Studios has been viewed",
			Timestamp:   "4h ago",
			Read:        true,
		},
		{
			ID:          "3",
			Title:       "Community Message",
			Description: "Sarah Chen commented on your discussion about career transition",
			Timestamp:   "1d ago",
			Read:        true,
		},
	}
}
