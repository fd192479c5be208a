package vsop87d

import "github.com/litescript/vsop87"

// VSOP87D series for Venus, truncated to the leading published terms.
var venusModel = vsop87.Model{
	L: [6]terms{
		{ // L0
			{Amp: 3.17614666774, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.01353968419, Phase: 5.59313319619, Freq: 10213.28554621100},
			{Amp: 0.00089891645, Phase: 5.30650047764, Freq: 20426.57109242200},
			{Amp: 0.00005477194, Phase: 4.41630661466, Freq: 7860.41939243920},
			{Amp: 0.00003455741, Phase: 2.69964447820, Freq: 11790.62908865880},
			{Amp: 0.00002372061, Phase: 2.99377542079, Freq: 3930.20969621960},
			{Amp: 0.00001664146, Phase: 4.25018630147, Freq: 1577.34354244780},
			{Amp: 0.00001438387, Phase: 4.15745084182, Freq: 9683.59458111640},
			{Amp: 0.00001317168, Phase: 5.18668228402, Freq: 26.29831979980},
			{Amp: 0.00001200521, Phase: 6.15357116043, Freq: 30639.85663863300},
			{Amp: 0.00000769314, Phase: 0.81629615196, Freq: 9437.76293488700},
			{Amp: 0.00000761380, Phase: 1.95014701047, Freq: 529.69096509460},
			{Amp: 0.00000707676, Phase: 1.06466702668, Freq: 775.52261132400},
			{Amp: 0.00000584836, Phase: 3.99839884762, Freq: 191.44826611160},
			{Amp: 0.00000499915, Phase: 4.12340210074, Freq: 15720.83878487840},
			{Amp: 0.00000429498, Phase: 3.58642858577, Freq: 19367.18916223280},
			{Amp: 0.00000326967, Phase: 5.67736584311, Freq: 5507.55323866740},
			{Amp: 0.00000326221, Phase: 4.59056477038, Freq: 10404.73381232260},
			{Amp: 0.00000231937, Phase: 3.16251059356, Freq: 9153.90361602180},
			{Amp: 0.00000179695, Phase: 4.65337908917, Freq: 1109.37855209340},
			{Amp: 0.00000155464, Phase: 5.57043888948, Freq: 19651.04848109800},
			{Amp: 0.00000128263, Phase: 4.22604490814, Freq: 20.77539549240},
			{Amp: 0.00000128058, Phase: 0.96209822685, Freq: 5661.33204915220},
			{Amp: 0.00000126972, Phase: 2.59298460150, Freq: 12566.15169998280},
		},
		{ // L1
			{Amp: 10213.52943052800, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00095617813, Phase: 2.46406511110, Freq: 10213.28554621100},
			{Amp: 0.00007787201, Phase: 0.62478482220, Freq: 20426.57109242200},
			{Amp: 0.00000151666, Phase: 6.10638559291, Freq: 1577.34354244780},
			{Amp: 0.00000141694, Phase: 2.12362986036, Freq: 30639.85663863300},
			{Amp: 0.00000173908, Phase: 2.65539499463, Freq: 26.29831979980},
			{Amp: 0.00000082235, Phase: 5.70231469551, Freq: 191.44826611160},
			{Amp: 0.00000069732, Phase: 2.68128549229, Freq: 9437.76293488700},
		},
		{ // L2
			{Amp: 0.00054127076, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00003891460, Phase: 0.34514360047, Freq: 10213.28554621100},
			{Amp: 0.00001337880, Phase: 2.02011286082, Freq: 20426.57109242200},
			{Amp: 0.00000023836, Phase: 2.04592119012, Freq: 26.29831979980},
			{Amp: 0.00000019331, Phase: 3.53527371458, Freq: 30639.85663863300},
			{Amp: 0.00000009984, Phase: 3.97130221102, Freq: 775.52261132400},
			{Amp: 0.00000007046, Phase: 1.51962593409, Freq: 1577.34354244780},
			{Amp: 0.00000006014, Phase: 0.99926757893, Freq: 191.44826611160},
		},
		{ // L3
			{Amp: 0.00000135742, Phase: 4.80389020993, Freq: 10213.28554621100},
			{Amp: 0.00000077846, Phase: 3.66876371591, Freq: 20426.57109242200},
			{Amp: 0.00000026023, Phase: 0.00000000000, Freq: 0.00000000000},
		},
		{ // L4
			{Amp: 0.00000114016, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00000003209, Phase: 5.20514170164, Freq: 20426.57109242200},
			{Amp: 0.00000001714, Phase: 2.51099591706, Freq: 10213.28554621100},
		},
		{ // L5
			{Amp: 0.00000000874, Phase: 3.14159265359, Freq: 0.00000000000},
		},
	},
	B: [6]terms{
		{ // B0
			{Amp: 0.05923638472, Phase: 0.26702775812, Freq: 10213.28554621100},
			{Amp: 0.00040107978, Phase: 1.14737178112, Freq: 20426.57109242200},
			{Amp: 0.00032814918, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00001011392, Phase: 1.08946123021, Freq: 30639.85663863300},
			{Amp: 0.00000149458, Phase: 6.25390268112, Freq: 18073.70493865020},
			{Amp: 0.00000137788, Phase: 0.86020095586, Freq: 1577.34354244780},
			{Amp: 0.00000129973, Phase: 3.67152480061, Freq: 9437.76293488700},
			{Amp: 0.00000119507, Phase: 3.70468787104, Freq: 2352.86615377180},
			{Amp: 0.00000107971, Phase: 4.53903678347, Freq: 22003.91463486980},
		},
		{ // B1
			{Amp: 0.00513347602, Phase: 1.80364310797, Freq: 10213.28554621100},
			{Amp: 0.00004380100, Phase: 3.38615711591, Freq: 20426.57109242200},
			{Amp: 0.00000199162, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00000196586, Phase: 2.53001197486, Freq: 30639.85663863300},
		},
		{ // B2
			{Amp: 0.00022377665, Phase: 3.38509143877, Freq: 10213.28554621100},
			{Amp: 0.00000281739, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00000173164, Phase: 5.25563766915, Freq: 20426.57109242200},
			{Amp: 0.00000026945, Phase: 3.87040891568, Freq: 30639.85663863300},
		},
		{ // B3
			{Amp: 0.00000646671, Phase: 4.99166565277, Freq: 10213.28554621100},
			{Amp: 0.00000019952, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00000005540, Phase: 0.77376923951, Freq: 20426.57109242200},
			{Amp: 0.00000002526, Phase: 5.44493763020, Freq: 30639.85663863300},
		},
		{ // B4
			{Amp: 0.00000014102, Phase: 0.31537190181, Freq: 10213.28554621100},
		},
		{ // B5
			{Amp: 0.00000000239, Phase: 2.05201727566, Freq: 10213.28554621100},
		},
	},
	R: [6]terms{
		{ // R0
			{Amp: 0.72334820905, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00489824185, Phase: 4.02151832268, Freq: 10213.28554621100},
			{Amp: 0.00001658058, Phase: 4.90206728012, Freq: 20426.57109242200},
			{Amp: 0.00001632093, Phase: 2.84548851892, Freq: 7860.41939243920},
			{Amp: 0.00001378048, Phase: 1.12846590600, Freq: 11790.62908865880},
			{Amp: 0.00000498399, Phase: 2.58682187717, Freq: 9683.59458111640},
			{Amp: 0.00000373958, Phase: 1.42314837063, Freq: 3930.20969621960},
			{Amp: 0.00000263616, Phase: 5.52938185920, Freq: 9437.76293488700},
			{Amp: 0.00000237455, Phase: 2.55135903978, Freq: 15720.83878487840},
			{Amp: 0.00000221983, Phase: 2.01346776772, Freq: 19367.18916223280},
			{Amp: 0.00000125896, Phase: 2.72769833559, Freq: 1577.34354244780},
			{Amp: 0.00000119467, Phase: 3.01975365264, Freq: 10404.73381232260},
		},
		{ // R1
			{Amp: 0.00034551039, Phase: 0.89198710598, Freq: 10213.28554621100},
			{Amp: 0.00000234203, Phase: 1.77224942714, Freq: 20426.57109242200},
			{Amp: 0.00000233998, Phase: 3.14159265359, Freq: 0.00000000000},
		},
		{ // R2
			{Amp: 0.00001406587, Phase: 5.06366395190, Freq: 10213.28554621100},
			{Amp: 0.00000015529, Phase: 5.47321687981, Freq: 20426.57109242200},
			{Amp: 0.00000013059, Phase: 0.00000000000, Freq: 0.00000000000},
		},
		{ // R3
			{Amp: 0.00000049582, Phase: 3.22263554520, Freq: 10213.28554621100},
		},
		{ // R4
			{Amp: 0.00000000573, Phase: 0.92229697820, Freq: 10213.28554621100},
		},
	},
}
