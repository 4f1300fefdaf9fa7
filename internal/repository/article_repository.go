package repository

import "newsfeed/internal/model"

// StaticArticleRepository serves a fixed catalog built at startup. It is
// read-only after construction, so concurrent readers need no locking.
type StaticArticleRepository struct {
	articles []model.Article
}

func NewStaticArticleRepository(articles []model.Article) *StaticArticleRepository {
	catalog := make([]model.Article, len(articles))
	copy(catalog, articles)
	return &StaticArticleRepository{articles: catalog}
}

func (r *StaticArticleRepository) ListArticles() ([]model.Article, error) {
	articles := make([]model.Article, len(r.articles))
	copy(articles, r.articles)
	return articles, nil
}

func (r *StaticArticleRepository) Count() int {
	return len(r.articles)
}

func SampleArticles() []model.Article {
	return []model.Article{
		{
			ID:          1,
			Title:       "Breakthrough in Renewable Energy Technology",
			ImageURL:    "https://images.unsplash.com/photo-1509395176047-4a66953fd231?q=80&w=1200&auto=format&fit=crop",
			Description: "A new solar cell design promises higher efficiency at lower cost.",
		},
		{
			ID:          2,
			Title:       "City Launches Smart Public Transport Initiative",
			ImageURL:    "https://images.unsplash.com/photo-1504215680853-026ed2a45def?q=80&w=1200&auto=format&fit=crop",
			Description: "The initiative will integrate real-time tracking and mobile ticketing.",
		},
		{
			ID:          3,
			Title:       "AI Tool Helps Farmers Predict Crop Yields",
			ImageURL:    "https://images.unsplash.com/photo-1501004318641-b39e6451bec6?q=80&w=1200&auto=format&fit=crop",
			Description: "Machine learning models analyze satellite data to forecast production.",
		},
		{
			ID:          4,
			Title:       "Startup Raises Series B to Expand Globally",
			ImageURL:    "https://images.unsplash.com/photo-1542744173-8e7e53415bb0?q=80&w=1200&auto=format&fit=crop",
			Description: "Funding will be used to scale engineering and operations.",
		},
		{
			ID:          5,
			Title:       "New App Simplifies Mental Health Support",
			ImageURL:    "https://images.unsplash.com/photo-1524504388940-b1c1722653e1?q=80&w=1200&auto=format&fit=crop",
			Description: "Features guided exercises and on-demand counseling connections.",
		},
	}
}
