package service

// defaultExercises is the starter catalog seeded for a new user so
// autocomplete is useful before any history exists.
var defaultExercises = []string{
	// Chest
	"Bench Press",
	"Incline Bench Press",
	"Decline Bench Press",
	"Dumbbell Bench Press",
	"Push Up",
	"Cable Fly",
	"Dumbbell Fly",
	"Machine Chest Press",

	// Shoulders
	"Overhead Press",
	"Dumbbell Shoulder Press",
	"Arnold Press",
	"Lateral Raise",
	"Front Raise",
	"Reverse Fly",
	"Face Pull",
	"Upright Row",

	// Back
	"Pull Up",
	"Chin Up",
	"Lat Pulldown",
	"Barbell Row",
	"Dumbbell Row",
	"Seated Cable Row",
	"T-Bar Row",
	"Straight-Arm Pulldown",

	// Legs
	"Squat",
	"Front Squat",
	"Goblet Squat",
	"Leg Press",
	"Leg Extension",
	"Leg Curl",
	"Romanian Deadlift",
	"Deadlift",
	"Sumo Deadlift",
	"Bulgarian Split Squat",
	"Lunge",
	"Walking Lunge",
	"Hip Thrust",
	"Glute Bridge",

	// Calves
	"Standing Calf Raise",
	"Seated Calf Raise",

	// Biceps
	"Barbell Curl",
	"Dumbbell Curl",
	"Hammer Curl",
	"Concentration Curl",
	"Preacher Curl",

	// Triceps
	"Dips",
	"Triceps Pushdown",
	"Rope Pushdown",
	"Skull Crusher",
	"Overhead Triceps Extension",
	"Close-Grip Bench Press",

	// Core
	"Plank",
	"Side Plank",
	"Crunch",
	"Reverse Crunch",
	"Sit Up",
	"Hanging Leg Raise",
	"Dead Bug",
	"Russian Twist",
	"Mountain Climber",

	// Conditioning
	"Treadmill Run",
	"Stationary Bike",
	"Rowing Machine",
	"Burpee",
	"Jump Rope",
	"Kettlebell Swing",
	"Farmer's Carry",
}
