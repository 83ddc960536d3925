package main

const defaultEvaluationYAML = `app_url: https://atlas-clinical.example.org/
performance_metrics:
  pwa_score: 85
  performance_score: 78
  first_contentful_paint: 1.8
  time_to_interactive: 2.4
  offline_success_rate: 92
scenario_outcomes: outcomes.yaml
survey_responses: surveys.yaml
nasss:
  technology: 2.5
  value_proposition: 3.0
  adopters: 3.5
  organization: 4.0
  wider_system: 3.0
  embedding: 3.5
  adaptation: 2.0
reaim:
  reach: 7.0
  effectiveness: 6.5
  adoption: 5.0
  implementation: 4.5
  maintenance: 6.0
`

const defaultOutcomesYAML = `- scenario_id: example-1
  category: WHO_IMCI
  resource_level: basic
  who_aligned: true
  expected_alignment: true
  appropriate_recommendation: true
  resource_aware: true
  response_time_ms: 1850
- scenario_id: example-2
  category: Emergency
  resource_level: intermediate
  who_aligned: true
  expected_alignment: true
  appropriate_recommendation: true
  resource_aware: false
  response_time_ms: 2210
- scenario_id: example-3
  category: Maternal_Health
  resource_level: basic
  who_aligned: false
  expected_alignment: true
  appropriate_recommendation: false
  resource_aware: true
  response_time_ms: 1990
`

const defaultSurveysYAML = `- expert_id: expert-1
  expert_type: Clinical
  years_experience: 12
  resource_limited_experience: true
  section_scores:
    clinical_appropriateness: 8
    technical_implementation: 7
    implementation_feasibility: 6
    overall_assessment: 8
  usability_score: 82.5
  comments:
    clinical_appropriateness: Recommendations were accurate for the IMCI cases reviewed
    overall_assessment: Intuitive interface but slow on older devices
- expert_id: expert-2
  expert_type: Global Health
  years_experience: 9
  resource_limited_experience: true
  section_scores:
    clinical_appropriateness: 7
    overall_assessment: 7
  usability_score: 76
  comments:
    implementation_feasibility: Training needs and infrastructure costs are a concern
`
