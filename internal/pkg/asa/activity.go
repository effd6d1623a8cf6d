package asa

// ActivityTag identifies a self-reported daily activity the patient can perform.
type ActivityTag string

const (
	ActivityEatingDressing   ActivityTag = "eating_dressing"
	ActivityWalkingIndoors   ActivityTag = "walking_indoors"
	ActivityWalkingBlocks    ActivityTag = "walking_blocks"
	ActivityGardening        ActivityTag = "gardening"
	ActivityClimbingStairs   ActivityTag = "climbing_stairs"
	ActivityGolf             ActivityTag = "golf"
	ActivityJogging          ActivityTag = "jogging"
	ActivityJumpRope         ActivityTag = "jump_rope"
	ActivitySwimming         ActivityTag = "swimming"
	ActivitySkiingBasketball ActivityTag = "skiing_basketball"
	ActivityRunningFast      ActivityTag = "running_fast"
)

// MaxActivityLevel is the ordinal of the most demanding known activity.
const MaxActivityLevel = 11

// Activity is one row of the capacity table.
type Activity struct {
	Tag         ActivityTag `json:"tag"`
	Level       int         `json:"level"`
	Description string      `json:"description"`
}

// ordered by ascending physical capacity, index+1 is the level
var activityTable = [MaxActivityLevel]Activity{
	{ActivityEatingDressing, 1, "eating, dressing or desk work"},
	{ActivityWalkingIndoors, 2, "climbing down stairs, walking indoors or cooking"},
	{ActivityWalkingBlocks, 3, "walking one or two blocks on flat ground"},
	{ActivityGardening, 4, "gardening or raking leaves"},
	{ActivityClimbingStairs, 5, "climbing a flight of stairs or dancing"},
	{ActivityGolf, 6, "playing golf"},
	{ActivityJogging, 7, "climbing stairs quickly or jogging slowly"},
	{ActivityJumpRope, 8, "jumping rope or moderate cycling"},
	{ActivitySwimming, 9, "swimming vigorously or running energetically"},
	{ActivitySkiingBasketball, 10, "cross-country skiing or full-court basketball"},
	{ActivityRunningFast, 11, "running fast over moderate or long distances"},
}

var activityLevels = func() map[ActivityTag]int {
	levels := make(map[ActivityTag]int, len(activityTable))
	for _, activity := range activityTable {
		levels[activity.Tag] = activity.Level
	}
	return levels
}()

// Level returns the ordinal of the tag, or 0 when the tag is not recognized.
func (t ActivityTag) Level() int {
	return activityLevels[t]
}

// Known reports whether the tag belongs to the capacity table.
func (t ActivityTag) Known() bool {
	_, ok := activityLevels[t]
	return ok
}

func ParseActivityTag(s string) (ActivityTag, bool) {
	tag := ActivityTag(s)
	return tag, tag.Known()
}

// KnownActivities returns a copy of the capacity table in ascending order.
func KnownActivities() []Activity {
	activities := make([]Activity, len(activityTable))
	copy(activities, activityTable[:])
	return activities
}

func KnownActivityTags() []ActivityTag {
	tags := make([]ActivityTag, len(activityTable))
	for i, activity := range activityTable {
		tags[i] = activity.Tag
	}
	return tags
}

// ActivityLevel returns the highest ordinal among the recognized tags.
// Unknown tags contribute nothing, an empty input yields 0.
func ActivityLevel(activities []ActivityTag) int {
	level := 0
	for _, tag := range activities {
		if l := tag.Level(); l > level {
			level = l
		}
	}
	return level
}
