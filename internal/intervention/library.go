package intervention

import "healthtrack/internal/model"

// library is the evidence-based intervention catalog, keyed by category.
var library = map[string][]model.Intervention{
	model.CategoryDietary: {
		{
			Title:           "Mediterranean Diet Adoption",
			Category:        model.CategoryDietary,
			Priority:        model.PriorityHigh,
			EvidenceLevel:   "Strong",
			Description:     "Adopt a Mediterranean-style diet rich in fruits, vegetables, whole grains, lean proteins, and healthy fats.",
			ExpectedOutcome: "Reduce cardiovascular risk by 20-30%, improve insulin sensitivity",
			ActionSteps: []string{
				"Increase olive oil consumption to 2-3 tablespoons daily",
				"Eat fish 2-3 times per week",
				"Consume 5-7 servings of fruits and vegetables daily",
				"Choose whole grains over refined carbohydrates",
				"Include nuts and seeds in daily diet",
			},
			TargetConditions: []model.Condition{model.ConditionPreDiabetes, model.ConditionHypertension, model.ConditionMetabolicSyndrome},
			Duration:         "3-6 months",
		},
		{
			Title:           "DASH Diet Implementation",
			Category:        model.CategoryDietary,
			Priority:        model.PriorityHigh,
			EvidenceLevel:   "Strong",
			Description:     "Follow Dietary Approaches to Stop Hypertension (DASH) diet to reduce blood pressure.",
			ExpectedOutcome: "Reduce systolic BP by 8-14 mmHg",
			ActionSteps: []string{
				"Limit sodium intake to less than 2,300mg daily",
				"Increase potassium-rich foods (bananas, spinach, beans)",
				"Consume 4-5 servings of fruits and vegetables daily",
				"Choose low-fat dairy products",
				"Limit red meat and processed foods",
			},
			TargetConditions: []model.Condition{model.ConditionHypertension},
			Duration:         "2-4 weeks to see initial results",
		},
		{
			Title:           "Carbohydrate Counting",
			Category:        model.CategoryDietary,
			Priority:        model.PriorityMedium,
			EvidenceLevel:   "Moderate",
			Description:     "Learn to count carbohydrates to better manage blood glucose levels.",
			ExpectedOutcome: "Improve glucose control and reduce HbA1c by 0.5-1%",
			ActionSteps: []string{
				"Track carbohydrate intake for 2 weeks",
				"Aim for 45-60g carbs per meal",
				"Choose complex carbohydrates over simple sugars",
				"Use measuring cups and food scales initially",
				"Keep a food diary",
			},
			TargetConditions: []model.Condition{model.ConditionPreDiabetes},
			Duration:         "4-8 weeks",
		},
	},
	model.CategoryExercise: {
		{
			Title:           "Progressive Aerobic Exercise Program",
			Category:        model.CategoryExercise,
			Priority:        model.PriorityHigh,
			EvidenceLevel:   "Strong",
			Description:     "Structured aerobic exercise program starting with low intensity and gradually increasing.",
			ExpectedOutcome: "Reduce cardiovascular risk, improve insulin sensitivity, lower blood pressure",
			ActionSteps: []string{
				"Start with 10-15 minutes of walking daily",
				"Gradually increase to 30 minutes, 5 days per week",
				"Include activities like swimming, cycling, or dancing",
				"Monitor heart rate during exercise",
				"Track progress weekly",
			},
			TargetConditions: []model.Condition{model.ConditionPreDiabetes, model.ConditionHypertension, model.ConditionMetabolicSyndrome},
			Duration:         "8-12 weeks",
		},
		{
			Title:           "Resistance Training Program",
			Category:        model.CategoryExercise,
			Priority:        model.PriorityMedium,
			EvidenceLevel:   "Moderate",
			Description:     "Add resistance training to improve muscle mass and metabolic health.",
			ExpectedOutcome: "Increase muscle mass, improve glucose metabolism, enhance bone density",
			ActionSteps: []string{
				"Perform resistance exercises 2-3 times per week",
				"Start with bodyweight exercises (push-ups, squats)",
				"Progress to light weights or resistance bands",
				"Focus on major muscle groups",
				"Allow 48 hours rest between sessions",
			},
			TargetConditions: []model.Condition{model.ConditionPreDiabetes, model.ConditionMetabolicSyndrome},
			Duration:         "6-8 weeks",
		},
		{
			Title:           "High-Intensity Interval Training (HIIT)",
			Category:        model.CategoryExercise,
			Priority:        model.PriorityMedium,
			EvidenceLevel:   "Moderate",
			Description:     "Short bursts of high-intensity exercise followed by recovery periods.",
			ExpectedOutcome: "Improve cardiovascular fitness, enhance insulin sensitivity",
			ActionSteps: []string{
				"Start with 2-3 HIIT sessions per week",
				"Alternate 30 seconds high intensity with 90 seconds recovery",
				"Total session duration: 15-20 minutes",
				"Include exercises like burpees, mountain climbers, jumping jacks",
				"Gradually increase intensity and duration",
			},
			TargetConditions: []model.Condition{model.ConditionPreDiabetes, model.ConditionMetabolicSyndrome},
			Duration:         "4-6 weeks",
		},
	},
	model.CategoryLifestyle: {
		{
			Title:           "Stress Management Program",
			Category:        model.CategoryLifestyle,
			Priority:        model.PriorityHigh,
			EvidenceLevel:   "Moderate",
			Description:     "Implement stress reduction techniques to improve overall health outcomes.",
			ExpectedOutcome: "Reduce cortisol levels, improve sleep quality, lower blood pressure",
			ActionSteps: []string{
				"Practice mindfulness meditation 10-15 minutes daily",
				"Try deep breathing exercises during stressful moments",
				"Engage in relaxing activities (yoga, tai chi, reading)",
				"Maintain social connections and support networks",
				"Consider professional counseling if needed",
			},
			TargetConditions: []model.Condition{model.ConditionHypertension, model.ConditionMetabolicSyndrome},
			Duration:         "6-8 weeks",
		},
		{
			Title:           "Sleep Hygiene Improvement",
			Category:        model.CategoryLifestyle,
			Priority:        model.PriorityMedium,
			EvidenceLevel:   "Moderate",
			Description:     "Optimize sleep quality and duration to support metabolic health.",
			ExpectedOutcome: "Improve insulin sensitivity, reduce appetite hormones, lower stress",
			ActionSteps: []string{
				"Maintain consistent sleep schedule (7-9 hours nightly)",
				"Create a relaxing bedtime routine",
				"Limit screen time 1 hour before bed",
				"Keep bedroom cool, dark, and quiet",
				"Avoid caffeine and large meals before bedtime",
			},
			TargetConditions: []model.Condition{model.ConditionPreDiabetes, model.ConditionMetabolicSyndrome},
			Duration:         "2-4 weeks",
		},
		{
			Title:           "Smoking Cessation Program",
			Category:        model.CategoryLifestyle,
			Priority:        model.PriorityCritical,
			EvidenceLevel:   "Strong",
			Description:     "Comprehensive smoking cessation program with behavioral and pharmacological support.",
			ExpectedOutcome: "Dramatically reduce cardiovascular risk, improve lung function",
			ActionSteps: []string{
				"Set a quit date within 2 weeks",
				"Remove smoking triggers from environment",
				"Consider nicotine replacement therapy",
				"Join a smoking cessation support group",
				"Develop alternative coping strategies",
			},
			TargetConditions: []model.Condition{model.ConditionHypertension, model.ConditionMetabolicSyndrome},
			Duration:         "12-16 weeks",
		},
	},
	model.CategoryMonitoring: {
		{
			Title:           "Home Blood Pressure Monitoring",
			Category:        model.CategoryMonitoring,
			Priority:        model.PriorityHigh,
			EvidenceLevel:   "Strong",
			Description:     "Regular home blood pressure monitoring to track hypertension management.",
			ExpectedOutcome: "Better blood pressure control, early detection of changes",
			ActionSteps: []string{
				"Measure blood pressure twice daily at same times",
				"Use validated home blood pressure monitor",
				"Record readings in log or app",
				"Report concerning readings to healthcare provider",
				"Bring logs to medical appointments",
			},
			TargetConditions: []model.Condition{model.ConditionHypertension},
			Duration:         "Ongoing",
		},
		{
			Title:           "Glucose Self-Monitoring",
			Category:        model.CategoryMonitoring,
			Priority:        model.PriorityMedium,
			EvidenceLevel:   "Moderate",
			Description:     "Regular blood glucose monitoring to track diabetes prevention efforts.",
			ExpectedOutcome: "Better glucose control awareness, early intervention",
			ActionSteps: []string{
				"Check fasting glucose 2-3 times per week",
				"Monitor post-meal glucose occasionally",
				"Track patterns in glucose readings",
				"Correlate readings with diet and exercise",
				"Share data with healthcare provider",
			},
			TargetConditions: []model.Condition{model.ConditionPreDiabetes},
			Duration:         "Ongoing",
		},
		{
			Title:           "Weight Management Tracking",
			Category:        model.CategoryMonitoring,
			Priority:        model.PriorityMedium,
			EvidenceLevel:   "Moderate",
			Description:     "Regular weight monitoring and body composition tracking.",
			ExpectedOutcome: "Maintain healthy weight, track progress",
			ActionSteps: []string{
				"Weigh yourself weekly at same time of day",
				"Measure waist circumference monthly",
				"Track BMI changes over time",
				"Monitor clothing fit as additional indicator",
				"Set realistic weight loss goals (1-2 lbs/week)",
			},
			TargetConditions: []model.Condition{model.ConditionPreDiabetes, model.ConditionMetabolicSyndrome},
			Duration:         "Ongoing",
		},
	},
}

// progressMetrics names the metrics to watch while an intervention of a
// given category is active.
var progressMetrics = map[string][]string{
	model.CategoryDietary:    {"weight_kg", "waist_cm", "glucose_fasting", "total_cholesterol"},
	model.CategoryExercise:   {"exercise_minutes_per_week", "resting_heart_rate", "weight_kg", "bmi"},
	model.CategoryLifestyle:  {"sleep_hours", "stress_level", "systolic_bp", "diastolic_bp"},
	model.CategoryMonitoring: {"measurement_frequency", "target_range_adherence"},
}
