package main

// RestaurantTopic is what restaurant feedback talks about.
type RestaurantTopic int

const (
	General RestaurantTopic = iota
	Ambience
	Food
	Hygiene
	Service
	Value
)

var restaurantTopicNames = [...]string{
	General:  "GENERAL",
	Ambience: "AMBIENCE",
	Food:     "FOOD",
	Hygiene:  "HYGIENE",
	Service:  "SERVICE",
	Value:    "VALUE",
}

func (t RestaurantTopic) String() string {
	return restaurantTopicNames[t]
}

// RestaurantTopics returns all restaurant topics.
func RestaurantTopics() []RestaurantTopic {
	return []RestaurantTopic{General, Ambience, Food, Hygiene, Service, Value}
}
