// Package seed holds the built-in demo dataset used by the offline session
// mode and the in-process mock backend.
package seed

type User struct {
	ID        int
	Username  string
	Email     string
	AvatarURL string
	Friends   []int
}

// Trail difficulty is stored as the backend's numeric score encoding
// (Easy 1, Moderate 2.5, Hard 4, Expert 5).
type Trail struct {
	ID            int
	Name          string
	Location      string
	Difficulty    float64
	Distance      float64
	Description   string
	Images        []string
	AverageRating float64
	TotalRatings  int
	CreatedBy     int
	CreatedAt     string
}

type Review struct {
	ID        int
	HikeID    int
	UserID    int
	Rating    float64
	Comment   string
	Upvotes   int
	UpvotedBy []int
	Images    []string
	CreatedAt string
}

// Users returns a fresh copy of the seed users.
func Users() []User {
	return []User{
		{ID: 1, Username: "trailblazer", Email: "trail@example.com", AvatarURL: "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=400", Friends: []int{2, 3}},
		{ID: 2, Username: "mountaineer", Email: "mountain@example.com", AvatarURL: "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=400", Friends: []int{1}},
		{ID: 3, Username: "adventurer", Email: "adventure@example.com", AvatarURL: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400", Friends: []int{1, 2}},
		{ID: 4, Username: "hiker_pro", Email: "hiker@example.com", AvatarURL: "https://images.unsplash.com/photo-1599566150163-29194dcaad36?w=400", Friends: nil},
	}
}

// Trails returns a fresh copy of the seed trails. Some image paths are
// relative on purpose: the client must absolutize them.
func Trails() []Trail {
	return []Trail{
		{
			ID: 1, Name: "Angels Landing", Location: "Zion National Park, Utah",
			Difficulty: 4, Distance: 5.4,
			Description: "A thrilling hike with stunning views and exposed sections. Features chain sections and steep drop-offs.",
			Images: []string{
				"/uploads/angels-landing-1.jpg",
				"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800",
			},
			AverageRating: 4.8, TotalRatings: 156, CreatedBy: 1, CreatedAt: "2024-01-15T10:00:00Z",
		},
		{
			ID: 2, Name: "Half Dome", Location: "Yosemite National Park, California",
			Difficulty: 5, Distance: 16.0,
			Description: "An iconic and challenging full-day hike. Requires permits and cable climbing.",
			Images: []string{
				"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800",
			},
			AverageRating: 4.9, TotalRatings: 234, CreatedBy: 2, CreatedAt: "2024-01-10T09:30:00Z",
		},
		{
			ID: 3, Name: "Avalanche Lake Trail", Location: "Glacier National Park, Montana",
			Difficulty: 2.5, Distance: 4.5,
			Description: "A beautiful hike through old-growth forest leading to a pristine alpine lake with waterfall views.",
			Images: []string{
				"/uploads/avalanche-lake-1.jpg",
			},
			AverageRating: 4.6, TotalRatings: 89, CreatedBy: 1, CreatedAt: "2024-02-01T14:20:00Z",
		},
		{
			ID: 4, Name: "Emerald Pools", Location: "Zion National Park, Utah",
			Difficulty: 1, Distance: 3.0,
			Description: "A family-friendly trail featuring waterfalls, pools, and hanging gardens.",
			Images: []string{
				"https://images.unsplash.com/photo-1426604966848-d7adac402bff?w=800",
			},
			AverageRating: 4.4, TotalRatings: 67, CreatedBy: 1, CreatedAt: "2024-02-05T11:15:00Z",
		},
		{
			ID: 5, Name: "The Narrows", Location: "Zion National Park, Utah",
			Difficulty: 2.5, Distance: 9.4,
			Description: "Wade through the Virgin River in a stunning slot canyon. Requires special preparation and equipment.",
			Images: []string{
				"https://images.unsplash.com/photo-1519904981063-b0cf448d479e?w=800",
			},
			AverageRating: 4.7, TotalRatings: 178, CreatedBy: 2, CreatedAt: "2024-01-20T08:45:00Z",
		},
		{
			ID: 6, Name: "Bright Angel Trail", Location: "Grand Canyon National Park, Arizona",
			Difficulty: 4, Distance: 12.0,
			Description: "A challenging descent into the Grand Canyon. What goes down must come back up.",
			Images: []string{
				"/uploads/bright-angel-1.jpg",
			},
			AverageRating: 4.7, TotalRatings: 145, CreatedBy: 1, CreatedAt: "2024-02-15T09:00:00Z",
		},
	}
}

// Reviews returns a fresh copy of the seed reviews.
func Reviews() []Review {
	return []Review{
		{ID: 1, HikeID: 1, UserID: 2, Rating: 5.0, Comment: "Absolutely breathtaking! The chains section is intense but worth it. Go early to avoid crowds.", Upvotes: 24, UpvotedBy: []int{1, 3, 4}, Images: []string{"https://images.unsplash.com/photo-1464822759023-fed622ff2c3b?w=800"}, CreatedAt: "2024-01-16T15:30:00Z"},
		{ID: 2, HikeID: 1, UserID: 3, Rating: 4.5, Comment: "Amazing views but very crowded. Not recommended if you have a fear of heights.", Upvotes: 18, UpvotedBy: []int{1, 2}, CreatedAt: "2024-01-18T11:20:00Z"},
		{ID: 3, HikeID: 2, UserID: 1, Rating: 5.0, Comment: "The most rewarding hike I've ever done! The cables are scary but manageable. Start before dawn!", Upvotes: 45, UpvotedBy: []int{2, 3, 4}, CreatedAt: "2024-01-12T16:00:00Z"},
		{ID: 4, HikeID: 2, UserID: 4, Rating: 4.5, Comment: "Challenging but incredible. Make sure you have your permit well in advance!", Upvotes: 32, UpvotedBy: []int{1, 2, 3}, CreatedAt: "2024-01-14T14:15:00Z"},
		{ID: 5, HikeID: 3, UserID: 2, Rating: 4.5, Comment: "Perfect trail for families. The lake is stunning and the waterfalls are gorgeous.", Upvotes: 15, UpvotedBy: []int{1, 3}, CreatedAt: "2024-02-03T10:45:00Z"},
		{ID: 6, HikeID: 4, UserID: 3, Rating: 4.0, Comment: "Great beginner hike with beautiful scenery. Can get crowded during peak season.", Upvotes: 8, UpvotedBy: []int{1}, CreatedAt: "2024-02-07T13:30:00Z"},
		{ID: 7, HikeID: 5, UserID: 1, Rating: 5.0, Comment: "One of the most unique hikes! Walking through the river is an adventure. Rent good water shoes!", Upvotes: 28, UpvotedBy: []int{2, 4}, CreatedAt: "2024-01-22T12:00:00Z"},
		{ID: 8, HikeID: 6, UserID: 4, Rating: 4.5, Comment: "Strenuous but the canyon views are unmatched. Carry more water than you think you need.", Upvotes: 12, UpvotedBy: []int{1}, CreatedAt: "2024-02-17T08:30:00Z"},
	}
}
